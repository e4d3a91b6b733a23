// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown on context cancellation, SIGINT or SIGTERM.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// HealthCheckHandler provides liveness and readiness endpoints.
package httpserver
