package logger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT"`
	Release     string `env:"SENTRY_RELEASE"`
	// MinLevel is the lowest level forwarded as a Sentry log entry.
	// Errors always create Sentry issues.
	MinLevel slog.Level `env:"SENTRY_MIN_LEVEL" envDefault:"WARN"`
}

// Enabled reports whether a DSN is configured.
func (c SentryConfig) Enabled() bool {
	return c.DSN != ""
}

// NewSentryHandler initializes the Sentry SDK and returns a handler that
// forwards records to it, plus a flush function to call before exit.
// With an empty DSN it returns a nil handler and a no-op flush.
func NewSentryHandler(cfg SentryConfig) (slog.Handler, func(time.Duration), error) {
	noop := func(time.Duration) {}
	if !cfg.Enabled() {
		return nil, noop, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
		EnableLogs:  true,
	}); err != nil {
		return nil, noop, fmt.Errorf("init sentry: %w", err)
	}

	handler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   sentryLogLevels(cfg.MinLevel),
	}.NewSentryHandler(context.Background())

	flush := func(timeout time.Duration) {
		sentry.Flush(timeout)
	}
	return handler, flush, nil
}

func sentryLogLevels(min slog.Level) []slog.Level {
	var levels []slog.Level
	for _, l := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l >= min {
			levels = append(levels, l)
		}
	}
	return levels
}
