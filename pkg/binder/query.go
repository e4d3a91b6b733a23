package binder

import "net/http"

// Query creates a query parameter binder function.
//
// It supports the same tag syntax as Form with the `query` key:
//
//	type ContactPageRequest struct {
//		QueryType string `query:"queryType"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
