// Package ratelimiter throttles requests with a token bucket per key.
//
// A bucket holds up to Capacity tokens and gains RefillRate tokens every
// RefillInterval. Each request takes one token; a request that finds the
// bucket empty is denied without draining it further.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.New(store, ratelimiter.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	r.With(ratelimiter.Middleware(limiter, func(r *http.Request) string {
//	    return clientip.FromContext(r.Context())
//	})).Post("/contact", submit)
//
// Middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every throttled route, plus Retry-After on denial.
package ratelimiter
