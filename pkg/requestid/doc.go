// Package requestid tags every HTTP request with an identifier that is
// echoed in the X-Request-ID response header and attached to log records.
//
// Incoming identifiers are reused only when they are at most 128 characters
// of letters, digits, '-' and '_'; anything else is replaced with a random
// UUID so clients cannot inject arbitrary text into logs.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
