package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/queryform/modules/contact"
	"github.com/dmitrymomot/queryform/pkg/clientip"
	"github.com/dmitrymomot/queryform/pkg/config"
	"github.com/dmitrymomot/queryform/pkg/environment"
	"github.com/dmitrymomot/queryform/pkg/httpserver"
	"github.com/dmitrymomot/queryform/pkg/logger"
	"github.com/dmitrymomot/queryform/pkg/ratelimiter"
	"github.com/dmitrymomot/queryform/pkg/requestid"
)

type appConfig struct {
	Env            string   `env:"APP_ENV" envDefault:"development"`
	Name           string   `env:"APP_NAME" envDefault:"queryform"`
	LogLevel       string   `env:"LOG_LEVEL"`
	QueryTypesFile string   `env:"QUERY_TYPES_FILE"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	RateLimit      bool     `env:"RATE_LIMIT_ENABLED" envDefault:"true"`

	Sentry  logger.SentryConfig
	HTTP    httpserver.Config
	Limiter ratelimiter.Config
}

func loadConfig() (appConfig, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return appConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (c appConfig) env() environment.Environment {
	return environment.Parse(c.Env)
}

func (c appConfig) queryTypes() (contact.QueryTypes, error) {
	return contact.LoadQueryTypes(c.QueryTypesFile)
}

// submitLimiter returns nil when throttling is disabled. The caller owns
// the returned store and must close it.
func (c appConfig) submitLimiter() (*ratelimiter.Limiter, *ratelimiter.MemoryStore, error) {
	if !c.RateLimit {
		return nil, nil, nil
	}
	store := ratelimiter.NewMemoryStore()
	l, err := ratelimiter.New(store, c.Limiter)
	if err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("rate limiter: %w", err)
	}
	return l, store, nil
}

func newLogger(cfg appConfig, out io.Writer, extra ...slog.Handler) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.env(), cfg.Name),
		logger.WithOutput(out),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
		logger.WithHandlers(extra...),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...), nil
}
