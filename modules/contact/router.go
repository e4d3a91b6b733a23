package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Mountable is a service that exposes its routes as one handler.
type Mountable interface {
	Handle() http.Handler
}

// RouterOptions selects the services to mount. Each one is optional.
type RouterOptions struct {
	Form Mountable
	API  Mountable
}

// Router mounts the contact services:
//
//	r := chi.NewRouter()
//	r.Mount("/", contact.Router(contact.RouterOptions{
//	    Form: contact.NewFormService(views),
//	    API:  contact.NewAPIService(contact.WithAllowedOrigins("https://example.com")),
//	}))
//
// The form is served under /contact and the JSON API under /api/contact.
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	if opts.Form != nil {
		r.Mount("/contact", opts.Form.Handle())
	}
	if opts.API != nil {
		r.Mount("/api/contact", opts.API.Handle())
	}

	return r
}
