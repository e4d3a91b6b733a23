// Package handler turns typed request handlers into http.HandlerFunc.
//
// A HandlerFunc receives a Context and a request value already populated by
// the configured binders, and returns a Response that knows how to render
// itself:
//
//	h := handler.HandlerFunc[handler.Context, FormInput](
//		func(ctx handler.Context, in FormInput) handler.Response {
//			if errs := validate(in); len(errs) > 0 {
//				return handler.JSONError(errs)
//			}
//			return handler.JSON(in)
//		},
//	)
//
//	r.Post("/api/contact/validate", handler.Wrap(h,
//		handler.WithBinders[handler.Context, FormInput](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, FormInput](errorHandler),
//	))
//
// # Datastar
//
// Templ, TemplPartial and TemplMulti detect Datastar requests (IsDataStar)
// and answer them with Server-Sent Event element patches instead of full
// HTML, so one handler serves both progressive-enhancement and plain form
// posts.
//
// # Errors
//
// HTTPError values carry a status and key. ValidationError and
// validator.ValidationErrors render as 422 "validation_error" with
// per-field details. NewErrorHandler logs errors and renders an error page
// or a Datastar toast.
package handler
