package contact

import (
	"github.com/a-h/templ"
)

// Confirmation shown after an accepted submission.
const (
	NoticeTitle = "Message Sent!"
	NoticeBody  = "Thanks for completing the form. We'll be in touch soon!"
)

// DOM targets patched by Datastar responses.
const (
	FormTarget  = "#contact-form"
	ToastTarget = "#toast-container"
)

// Views renders the contact form. Every function is required.
type Views struct {
	Page  func(PageParams) templ.Component
	Form  func(FormParams) templ.Component
	Field func(FieldParams) templ.Component
	Toast func(ToastParams) templ.Component
}

// PageParams contains data for rendering the full contact page.
type PageParams struct {
	Form FormParams
	// Notice is set after an accepted submission on non-Datastar requests.
	Notice *ToastParams
}

// FormParams contains data for rendering the form.
type FormParams struct {
	Input   FormInput
	Errors  ValidationResult
	Options QueryTypes
}

// Field returns the params for one field block of the form.
func (p FormParams) Field(name string) FieldParams {
	return FieldParams{
		Name:    name,
		Input:   p.Input,
		Message: p.Errors.Get(name),
		Options: p.Options,
	}
}

// Fields returns the params for every field block in form order.
func (p FormParams) Fields() []FieldParams {
	fields := make([]FieldParams, len(fieldOrder))
	for i, name := range fieldOrder {
		fields[i] = p.Field(name)
	}
	return fields
}

// FieldParams contains data for rendering a single field block.
type FieldParams struct {
	Name    string
	Input   FormInput
	Message string
	Options QueryTypes
}

var fieldLabels = map[string]string{
	FieldFirstName: "First Name",
	FieldLastName:  "Last Name",
	FieldEmail:     "Email Address",
	FieldQueryType: "Query Type",
	FieldMessage:   "Message",
	FieldConsent:   "I consent to being contacted by the team",
}

// Label returns the visible label of the field.
func (f FieldParams) Label() string {
	return fieldLabels[f.Name]
}

// Value returns the current text of the field. Consent has no text value.
func (f FieldParams) Value() string {
	switch f.Name {
	case FieldFirstName:
		return f.Input.FirstName
	case FieldLastName:
		return f.Input.LastName
	case FieldEmail:
		return f.Input.Email
	case FieldQueryType:
		return f.Input.QueryType
	case FieldMessage:
		return f.Input.Message
	default:
		return ""
	}
}

// Checked reports whether the consent checkbox is ticked.
func (f FieldParams) Checked() bool {
	return f.Name == FieldConsent && f.Input.Consent
}

// Invalid reports whether the field carries a message.
func (f FieldParams) Invalid() bool {
	return f.Message != ""
}

// BlockID is the id of the element wrapping the field, patched by
// per-field validation.
func (f FieldParams) BlockID() string {
	return "field-" + f.Name
}

// ErrorID is the id of the element holding the field's message.
func (f FieldParams) ErrorID() string {
	return f.Name + "-error"
}

// ToastParams contains data for rendering the confirmation notice.
type ToastParams struct {
	Title string
	Body  string
}

// SuccessNotice returns the confirmation shown after an accepted submission.
func SuccessNotice() ToastParams {
	return ToastParams{Title: NoticeTitle, Body: NoticeBody}
}
