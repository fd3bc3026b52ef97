package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dinerozz/planzo-web/internal/apiclient"
	"github.com/dinerozz/planzo-web/internal/realtime"
)

// CacheInvalidator drops cached remote listings.
type CacheInvalidator interface {
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// invalidationPrefixes maps realtime event namespaces to the cached listings they affect.
// An event belongs to a namespace when its name starts with it.
var invalidationPrefixes = []struct {
	namespace string
	prefix    string
}{
	{"vendors", apiclient.CacheKey("/vendors", nil)},
	{"events", apiclient.CacheKey("/events", nil)},
	{"categories", apiclient.CacheKey("/categories", nil)},
}

func watchRealtime(ctx context.Context, cfg realtime.Config, cache CacheInvalidator, logger *slog.Logger) {
	conn, err := realtime.Dial(ctx, cfg, logger)
	if err != nil {
		logger.Warn("realtime channel unavailable", slog.String("error", err.Error()))
		return
	}
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	consumeRealtime(ctx, conn.Messages(), cache, logger)
}

func consumeRealtime(ctx context.Context, messages <-chan realtime.Message, cache CacheInvalidator, logger *slog.Logger) {
	for msg := range messages {
		logger.Debug("realtime message", slog.String("event", msg.Event))

		if cache == nil {
			continue
		}
		for _, p := range invalidationPrefixes {
			if !strings.HasPrefix(msg.Event, p.namespace) {
				continue
			}
			if err := cache.DeleteByPrefix(ctx, p.prefix); err != nil {
				logger.Warn("failed to invalidate cache",
					slog.String("event", msg.Event),
					slog.String("error", err.Error()))
			}
		}
	}
}
