// Package views renders the contact form pages as templ components.
//
// Markup lives in embedded html/template files and is adapted to templ
// with templ.FromGoHTML, so the components can be returned from handlers
// and sent as Datastar element patches:
//
//	svc := contact.NewFormService(views.Contact(),
//		contact.WithErrorHandler(handler.NewErrorHandler(log, views.ErrorHandlerConfig())),
//	)
//
// Inputs that failed validation carry aria-invalid="true" and an
// aria-describedby reference to their message.
package views
