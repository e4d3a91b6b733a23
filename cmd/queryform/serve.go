package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/queryform/handler"
	"github.com/dmitrymomot/queryform/modules/contact"
	"github.com/dmitrymomot/queryform/modules/contact/views"
	"github.com/dmitrymomot/queryform/pkg/clientip"
	"github.com/dmitrymomot/queryform/pkg/environment"
	"github.com/dmitrymomot/queryform/pkg/httpserver"
	"github.com/dmitrymomot/queryform/pkg/logger"
	"github.com/dmitrymomot/queryform/pkg/ratelimiter"
	"github.com/dmitrymomot/queryform/pkg/requestid"
)

const sentryFlushTimeout = 2 * time.Second

func newServeCmd(load func() (appConfig, error)) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}
			return runServe(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}

func runServe(ctx context.Context, cfg appConfig, out io.Writer, opts ...httpserver.Option) error {
	sentryHandler, flush, err := logger.NewSentryHandler(cfg.Sentry)
	if err != nil {
		return err
	}
	defer flush(sentryFlushTimeout)

	log, err := newLogger(cfg, out, sentryHandler)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	options, err := cfg.queryTypes()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := contact.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	limiter, store, err := cfg.submitLimiter()
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	router := newRouter(routerConfig{
		log:            log,
		limiter:        limiter,
		env:            cfg.env(),
		options:        options,
		metrics:        metrics,
		gatherer:       reg,
		allowedOrigins: cfg.AllowedOrigins,
	})

	log.InfoContext(ctx, "starting queryform",
		slog.Any("query_types", options.Values()),
		slog.Bool("sentry", cfg.Sentry.Enabled()),
		slog.Bool("rate_limit", limiter != nil),
	)

	server := httpserver.NewFromConfig(cfg.HTTP, append([]httpserver.Option{httpserver.WithLogger(log)}, opts...)...)
	return server.Run(ctx, router)
}

type routerConfig struct {
	log            *slog.Logger
	env            environment.Environment
	options        contact.QueryTypes
	metrics        *contact.Metrics
	gatherer       prometheus.Gatherer
	allowedOrigins []string
	limiter        *ratelimiter.Limiter
}

func newRouter(cfg routerConfig) http.Handler {
	validator := contact.NewValidator(cfg.options)

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(cfg.env),
	)

	r.Get("/healthz", httpserver.HealthCheckHandler(cfg.log))
	r.Handle("/metrics", promhttp.HandlerFor(cfg.gatherer, promhttp.HandlerOpts{}))
	r.Get("/", http.RedirectHandler("/contact", http.StatusFound).ServeHTTP)

	r.Mount("/", contact.Router(contact.RouterOptions{
		Form: contact.NewFormService(views.Contact(),
			contact.WithValidator(validator),
			contact.WithMetrics(cfg.metrics),
			contact.WithLogger(cfg.log),
			contact.WithSubmitLimiter(cfg.limiter),
			contact.WithErrorHandler(handler.NewErrorHandler(cfg.log, views.ErrorHandlerConfig())),
		),
		API: contact.NewAPIService(
			contact.WithValidator(validator),
			contact.WithMetrics(cfg.metrics),
			contact.WithLogger(cfg.log),
			contact.WithSubmitLimiter(cfg.limiter),
			contact.WithAllowedOrigins(cfg.allowedOrigins...),
		),
	}))

	return r
}
