package binder

import (
	"fmt"
	"mime"
	"net/http"
	"strings"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (1MB).
// The contact form carries no files, so a small buffer is enough.
const DefaultMaxMemory = 1 << 20

// Form creates a binder for application/x-www-form-urlencoded and
// multipart/form-data request bodies.
//
// Supported struct tags:
//   - `form:"name"`              - binds to form field "name"
//   - `form:"name,alias=legacy"` - also accepts "legacy" when "name" is absent
//   - `form:"-"`                 - skips the field
//
// Supported types: string, signed and unsigned ints, bool (including the
// "on" value browsers send for checked checkboxes), pointers and slices of those.
//
// GET, HEAD and bodiless requests yield ErrBinderNotApplicable so the same
// handler can serve the initial page and the submission:
//
//	r.HandleFunc("/contact", handler.Wrap(svc.contact,
//		handler.WithBinders[handler.Context, ContactRequest](
//			binder.Query(), // prefill on GET
//			binder.Form(),  // skipped for GET, applied for POST
//		),
//	))
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			return ErrBinderNotApplicable
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			if r.ContentLength == 0 {
				return ErrBinderNotApplicable
			}
			return fmt.Errorf("%w: expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
		}

		mediaType, params, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}

		var values map[string][]string

		switch {
		case mediaType == "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.PostForm

		case strings.HasPrefix(mediaType, "multipart/form-data"):
			if params["boundary"] == "" {
				return fmt.Errorf("%w: missing boundary in content type", ErrFailedToParseForm)
			}
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.MultipartForm.Value

		default:
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mediaType)
		}

		return bindToStruct(v, "form", values, ErrFailedToParseForm)
	}
}
