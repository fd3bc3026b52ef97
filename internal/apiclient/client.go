// Package apiclient talks to the remote Planzo API. Every payload is decoded into its DTO
// and validated before it is handed to callers.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/dinerozz/planzo-web/internal/metrics"
	"github.com/dinerozz/planzo-web/pkg/utils"
)

// APIError is a non-2xx answer from the remote API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("remote api: %d %s", e.Status, e.Message)
}

// ValidationError means the payload did not match the expected shape.
type ValidationError struct {
	Endpoint string
	Err      error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid payload from %s: %v", e.Endpoint, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Cache is the read-through store used for public listings.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type Client struct {
	baseURL  string
	hc       *http.Client
	cache    Cache
	cacheTTL time.Duration
	logger   *slog.Logger
}

type Option func(*Client)

func WithCache(cache Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CacheKey is the cache key of a public GET.
func CacheKey(path string, query url.Values) string {
	key := "api:" + path
	if len(query) > 0 {
		key += "?" + query.Encode()
	}
	return key
}

// getPublic serves anonymous GETs, through the cache when one is configured.
func (c *Client) getPublic(ctx context.Context, path string, query url.Values, out interface{}) error {
	if c.cache == nil {
		return c.do(ctx, http.MethodGet, path, query, "", nil, out)
	}

	key := CacheKey(path, query)
	if err := c.cache.Get(ctx, key, out); err == nil {
		if verr := utils.ValidateStruct(out); verr == nil {
			return nil
		}
	}
	// A rejected or half-decoded cache entry must not leak into the fresh reply.
	resetValue(out)

	if err := c.do(ctx, http.MethodGet, path, query, "", nil, out); err != nil {
		return err
	}

	if err := c.cache.Set(ctx, key, out, c.cacheTTL); err != nil {
		c.logger.Warn("failed to cache api response", slog.String("key", key), slog.String("error", err.Error()))
	}
	return nil
}

func resetValue(out interface{}) {
	v := reflect.ValueOf(out)
	if v.Kind() == reflect.Pointer && !v.IsNil() {
		v.Elem().SetZero()
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		metrics.ObserveAPICall(path, 0, time.Since(start))
		return fmt.Errorf("failed to call %s: %w", path, err)
	}
	defer resp.Body.Close()
	metrics.ObserveAPICall(path, resp.StatusCode, time.Since(start))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &ValidationError{Endpoint: path, Err: err}
	}
	if err := utils.ValidateStruct(out); err != nil {
		return &ValidationError{Endpoint: path, Err: err}
	}

	return nil
}

func newAPIError(status int, raw []byte) *APIError {
	var reply struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(raw, &reply)

	message := strings.TrimSpace(reply.Message)
	if message == "" {
		message = http.StatusText(status)
	}
	return &APIError{Status: status, Message: message}
}

// Message extracts the user-facing text of an error from this package.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// HTTPStatus is the status a handler should answer with when a remote call failed.
// Remote 401/403/404 pass through; everything else is a bad gateway or a timeout.
func HTTPStatus(err error) int {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		switch apiErr.Status {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
			return apiErr.Status
		}
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}
