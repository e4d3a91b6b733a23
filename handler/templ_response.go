package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption is an alias for datastar's PatchElementOption.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the patch is applied to.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component is merged into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is a component with its own patch options, used by TemplMulti.
type TemplPatch struct {
	Component templ.Component
	Options   []TemplOption
}

// Patch creates a TemplPatch.
func Patch(component templ.Component, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

// Templ renders component as HTML, or as a single element patch for
// Datastar requests.
func Templ(component templ.Component, opts ...TemplOption) Response {
	return templPartialResponse{
		partial: component,
		full:    component,
		status:  http.StatusOK,
		options: opts,
	}
}

// TemplPartial patches only partial for Datastar requests and renders the
// full page otherwise.
//
//	return handler.TemplPartial(
//		views.Form(state),
//		views.Page(state),
//		handler.WithTarget("#contact-form"),
//	)
func TemplPartial(partial, full templ.Component, opts ...TemplOption) Response {
	return TemplPartialWithStatus(http.StatusOK, partial, full, opts...)
}

// TemplPartialWithStatus is TemplPartial with a custom status for the full
// page render. Datastar patches are always sent with 200 because the client
// ignores SSE bodies on error statuses.
func TemplPartialWithStatus(status int, partial, full templ.Component, opts ...TemplOption) Response {
	return templPartialResponse{
		partial: partial,
		full:    full,
		status:  status,
		options: opts,
	}
}

type templPartialResponse struct {
	partial templ.Component
	full    templ.Component
	status  int
	options []TemplOption
}

func (t templPartialResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(t.partial, t.options...)
	}
	return renderHTML(w, r, t.status, t.full)
}

// TemplMulti sends one patch per component for Datastar requests and
// concatenates the components otherwise.
func TemplMulti(patches ...TemplPatch) Response {
	return templMultiResponse{patches: patches}
}

type templMultiResponse struct {
	patches []TemplPatch
}

func (t templMultiResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, patch := range t.patches {
			if err := sse.PatchElementTempl(patch.Component, patch.Options...); err != nil {
				return err
			}
		}
		return nil
	}

	components := make([]templ.Component, 0, len(t.patches))
	for _, patch := range t.patches {
		components = append(components, patch.Component)
	}
	return renderHTML(w, r, http.StatusOK, templ.Join(components...))
}

func renderHTML(w http.ResponseWriter, r *http.Request, status int, c templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return c.Render(r.Context(), w)
}
