package views

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/queryform/handler"
	"github.com/dmitrymomot/queryform/modules/contact"
)

//go:embed templates/*.html
var templatesFS embed.FS

var (
	pageTemplates  = template.Must(template.ParseFS(templatesFS, "templates/layout.html", "templates/contact.html"))
	errorTemplates = template.Must(template.ParseFS(templatesFS, "templates/layout.html", "templates/error.html"))
)

const pageTitle = "Contact Us"

type pageData struct {
	Title  string
	Form   contact.FormParams
	Notice *contact.ToastParams
}

type errorData struct {
	Title string
	handler.ErrorPageParams
}

// Contact returns the views used by contact.FormService.
func Contact() *contact.Views {
	return &contact.Views{
		Page:  Page,
		Form:  Form,
		Field: Field,
		Toast: Toast,
	}
}

// ErrorHandlerConfig returns a handler.ErrorHandlerConfig rendering the
// error page and toast defined here.
func ErrorHandlerConfig() handler.ErrorHandlerConfig {
	return handler.ErrorHandlerConfig{
		ErrorPage:  ErrorPage,
		ErrorToast: ErrorToast,
	}
}

func Page(p contact.PageParams) templ.Component {
	return templ.FromGoHTML(pageTemplates.Lookup("layout"), pageData{
		Title:  pageTitle,
		Form:   p.Form,
		Notice: p.Notice,
	})
}

func Form(p contact.FormParams) templ.Component {
	return templ.FromGoHTML(pageTemplates.Lookup("form"), p)
}

func Field(p contact.FieldParams) templ.Component {
	return templ.FromGoHTML(pageTemplates.Lookup("field"), p)
}

func Toast(p contact.ToastParams) templ.Component {
	return templ.FromGoHTML(pageTemplates.Lookup("toast"), p)
}

func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return templ.FromGoHTML(errorTemplates.Lookup("layout"), errorData{
		Title:           http.StatusText(p.StatusCode),
		ErrorPageParams: p,
	})
}

func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return templ.FromGoHTML(errorTemplates.Lookup("error-toast"), p)
}
