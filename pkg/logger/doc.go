// Package logger builds *slog.Logger instances with functional options.
//
// New picks a text or JSON handler, optionally fans records out to extra
// handlers (NewSentryHandler provides one for Sentry), and wraps the result
// in LogHandlerDecorator so ContextExtractor callbacks can add request-scoped
// attributes such as request_id.
//
//	sentryHandler, flush, err := logger.NewSentryHandler(cfg.Sentry)
//	if err != nil {
//	    return err
//	}
//	defer flush(2 * time.Second)
//
//	log := logger.New(
//	    logger.WithEnvironment(env, "queryform"),
//	    logger.WithHandlers(sentryHandler),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// Attribute helpers (Error, Component, Event, Field, ...) keep key names
// consistent across the codebase. Error and Errors return an empty Attr for
// nil errors, so they can be passed unconditionally.
package logger
