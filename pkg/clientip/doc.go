// Package clientip resolves the originating client address of a request
// served behind reverse proxies.
//
// Headers in DefaultHeaders are checked in order (Cloudflare, DigitalOcean,
// X-Forwarded-For, X-Real-IP) and the first valid address wins; RemoteAddr
// is the fallback. Addresses are returned in canonical form, so
// "::ffff:203.0.113.7" and "203.0.113.7" resolve to the same key.
//
// Forwarding headers are client-controlled unless a trusted proxy
// overwrites them. Use the resolved address for throttling and logging,
// never for authorization.
//
//	r.Use(clientip.Middleware)
//	ip := clientip.FromContext(r.Context())
package clientip
