// Package realtime keeps the server's connection to the Planzo API socket.
//
// Dial tries a websocket first and falls back to HTTP long polling when the upgrade fails.
// Reconnects are not attempted here.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dinerozz/planzo-web/internal/metrics"
	"github.com/gorilla/websocket"
)

type Transport string

const (
	TransportWebsocket Transport = "websocket"
	TransportPolling   Transport = "polling"
)

type Message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type Config struct {
	// URL is the http(s) base of the socket server.
	URL string
	// Cookie is sent on every request so the server sees the same credentials as the browser.
	Cookie       string
	PollInterval time.Duration
	HTTPClient   *http.Client
	Dialer       *websocket.Dialer
}

type Conn struct {
	transport Transport
	messages  chan Message
	ws        *websocket.Conn
	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
	logger    *slog.Logger
}

func Dial(ctx context.Context, cfg Config, logger *slog.Logger) (*Conn, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.Dialer == nil {
		cfg.Dialer = websocket.DefaultDialer
	}

	base, err := parseBase(cfg.URL)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	if cfg.Cookie != "" {
		header.Set("Cookie", cfg.Cookie)
	}

	runCtx, cancel := context.WithCancel(context.Background())
	conn := &Conn{
		messages: make(chan Message, 64),
		cancel:   cancel,
		done:     make(chan struct{}),
		logger:   logger,
	}

	ws, _, err := cfg.Dialer.DialContext(ctx, websocketURL(base), header)
	if err == nil {
		conn.transport = TransportWebsocket
		conn.ws = ws
		go conn.readLoop(runCtx)
		logger.Info("realtime connected", slog.String("transport", string(TransportWebsocket)))
		return conn, nil
	}

	logger.Warn("websocket unavailable, falling back to polling", slog.String("error", err.Error()))

	pollURL := *base
	pollURL.Path += "/poll"
	poller := &poller{
		url:      pollURL.String(),
		header:   header,
		hc:       cfg.HTTPClient,
		interval: cfg.PollInterval,
	}
	if _, err := poller.fetch(ctx); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to connect to realtime server: %w", err)
	}

	conn.transport = TransportPolling
	go conn.pollLoop(runCtx, poller)
	logger.Info("realtime connected", slog.String("transport", string(TransportPolling)))
	return conn, nil
}

func parseBase(raw string) (*url.URL, error) {
	base, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid realtime url: %w", err)
	}
	return base, nil
}

func websocketURL(base *url.URL) string {
	u := *base
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path += "/ws"
	return u.String()
}

func (c *Conn) Transport() Transport {
	return c.transport
}

// Messages is closed when the connection ends.
func (c *Conn) Messages() <-chan Message {
	return c.messages
}

func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		if c.ws != nil {
			_ = c.ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
			err = c.ws.Close()
		}
	})
	<-c.done
	return err
}

func (c *Conn) deliver(ctx context.Context, msg Message) bool {
	metrics.ObserveRealtime(string(c.transport), msg.Event)
	select {
	case c.messages <- msg:
		return true
	case <-ctx.Done():
		return false
	}
}

func (c *Conn) readLoop(ctx context.Context) {
	defer close(c.done)
	defer close(c.messages)

	for {
		var msg Message
		if err := c.ws.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) && !errors.Is(err, net.ErrClosed) {
				c.logger.Warn("realtime read failed", slog.String("error", err.Error()))
			}
			return
		}
		if msg.Event == "" {
			continue
		}
		if !c.deliver(ctx, msg) {
			return
		}
	}
}

func (c *Conn) pollLoop(ctx context.Context, p *poller) {
	defer close(c.done)
	defer close(c.messages)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		batch, err := p.fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.Warn("realtime poll failed", slog.String("error", err.Error()))
			continue
		}

		for _, msg := range batch {
			if !c.deliver(ctx, msg) {
				return
			}
		}
	}
}

type poller struct {
	url      string
	header   http.Header
	hc       *http.Client
	interval time.Duration
}

func (p *poller) fetch(ctx context.Context) ([]Message, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range p.header {
		req.Header[k] = v
	}

	resp, err := p.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("poll returned %d", resp.StatusCode)
	}

	var batch []Message
	if err := json.NewDecoder(resp.Body).Decode(&batch); err != nil {
		return nil, fmt.Errorf("failed to decode poll response: %w", err)
	}
	return batch, nil
}
