package ratelimiter

import (
	"net/http"
	"strconv"
)

// KeyFunc extracts the throttling key from a request. An empty key skips throttling.
type KeyFunc func(r *http.Request) string

// LimitedFunc writes the response for a throttled request. The rate limit
// headers are already set when it runs.
type LimitedFunc func(w http.ResponseWriter, r *http.Request, res Result)

// ErrorFunc handles store failures. The request is not forwarded.
type ErrorFunc func(w http.ResponseWriter, r *http.Request, err error)

type middlewareConfig struct {
	onLimited LimitedFunc
	onError   ErrorFunc
}

type MiddlewareOption func(*middlewareConfig)

func WithLimitedHandler(fn LimitedFunc) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.onLimited = fn
		}
	}
}

func WithErrorHandler(fn ErrorFunc) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.onError = fn
		}
	}
}

// Middleware throttles requests per key and sets the X-RateLimit-* headers.
func Middleware(l *Limiter, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := middlewareConfig{
		onLimited: func(w http.ResponseWriter, _ *http.Request, _ Result) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		},
		onError: func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := l.Allow(r.Context(), key)
			if err != nil {
				cfg.onError(w, r, err)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				if s := int(res.RetryAfter().Seconds()); s > 0 {
					h.Set("Retry-After", strconv.Itoa(s))
				}
				cfg.onLimited(w, r, res)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
