package contact

import (
	"github.com/dmitrymomot/queryform/pkg/sanitizer"
)

// Form field names as they appear on the wire and in ValidationResult.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldQueryType = "queryType"
	FieldMessage   = "message"
	FieldConsent   = "consent"
)

// fieldOrder is the order fields appear in the form.
var fieldOrder = []string{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldQueryType,
	FieldMessage,
	FieldConsent,
}

// Fields returns every form field name in form order.
func Fields() []string {
	return append([]string(nil), fieldOrder...)
}

// IsField reports whether name is one of the six form fields.
func IsField(name string) bool {
	for _, f := range fieldOrder {
		if f == name {
			return true
		}
	}
	return false
}

// FormInput is one candidate submission of the contact form.
// The consent checkbox is also accepted under its legacy name "checkbox".
type FormInput struct {
	FirstName string `form:"firstName" query:"firstName" json:"firstName"`
	LastName  string `form:"lastName" query:"lastName" json:"lastName"`
	Email     string `form:"email" query:"email" json:"email"`
	QueryType string `form:"queryType" query:"queryType" json:"queryType"`
	Message   string `form:"message" query:"message" json:"message"`
	Consent   bool   `form:"consent,alias=checkbox" query:"-" json:"consent"`
}

// DefaultInput returns the state of a freshly mounted form.
func DefaultInput() FormInput {
	return FormInput{}
}

var (
	normalizeName = sanitizer.Compose(
		sanitizer.StripHTML,
		sanitizer.RemoveControlChars,
		sanitizer.SingleLine,
		sanitizer.NFC,
	)
	normalizeMessage = sanitizer.Compose(
		sanitizer.StripHTML,
		sanitizer.RemoveControlChars,
		sanitizer.NormalizeNewlines,
		sanitizer.Trim,
		sanitizer.NFC,
	)
	normalizeEmail = sanitizer.Compose(
		sanitizer.NormalizeEmail,
		sanitizer.NFC,
	)
)

// Normalize returns a cleaned copy of in: surrounding whitespace trimmed,
// Unicode in NFC form, markup stripped from names and message, inner
// whitespace in names collapsed and the email domain lowercased.
func Normalize(in FormInput) FormInput {
	return FormInput{
		FirstName: normalizeName(in.FirstName),
		LastName:  normalizeName(in.LastName),
		Email:     normalizeEmail(in.Email),
		QueryType: sanitizer.Trim(in.QueryType),
		Message:   normalizeMessage(in.Message),
		Consent:   in.Consent,
	}
}
