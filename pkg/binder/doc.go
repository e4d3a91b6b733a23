// Package binder binds HTTP request data to Go structs.
//
// Each binder is a func(*http.Request, any) error that reads one source and
// fills the struct fields carrying the matching tag:
//
//   - Form():  `form:"name"` from urlencoded or multipart bodies
//   - Query(): `query:"name"` from the URL query string
//   - Path(extractor): `path:"name"` from router parameters (chi.URLParam)
//   - JSON():  `json:"name"` from application/json bodies, strict mode
//
// Binders are composed with handler.WithBinders and applied in order, so a
// struct can mix sources. A binder returns ErrBinderNotApplicable when the
// request carries nothing for it to read (a form binder on GET); the handler
// skips it instead of failing.
//
// Form and query tags accept aliases for renamed fields:
//
//	type ContactRequest struct {
//		Consent bool `form:"consent,alias=checkbox"`
//	}
//
// Failures wrap one of the package's sentinel errors
// (ErrFailedToParseForm, ErrUnsupportedMediaType, ...) so callers can map
// them to HTTP status codes with errors.Is.
package binder
