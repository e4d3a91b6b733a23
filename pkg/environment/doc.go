// Package environment names the deployment environments the service knows
// about and carries the active one through request contexts.
//
//	env := environment.Parse(cfg.AppEnv) // "prod" -> Production
//	r.Use(environment.Middleware(env))
//
// Error handlers call environment.IsDevelopment(r.Context()) to decide
// whether internal error details may be shown.
package environment
