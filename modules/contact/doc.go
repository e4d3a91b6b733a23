// Package contact implements the contact form: its input, the per-field
// validation rules and the HTTP services that render and check it.
//
// Validation is pure. Validate normalizes a FormInput and checks each of
// the six fields on its own; the returned ValidationResult maps a failing
// field to exactly one message and is empty when the input is acceptable:
//
//	result := contact.Validate(contact.FormInput{Email: "jane"})
//	result.Get(contact.FieldEmail) // "Please enter a valid email address"
//
// The query type options default to DefaultQueryTypes and can be loaded
// from YAML with LoadQueryTypes.
//
// FormService renders the form with templ components supplied through
// Views and answers Datastar requests with element patches. APIService
// exposes the same rules as JSON. Router mounts both. WithSubmitLimiter
// throttles full submissions per client address.
//
// Accepted submissions are logged with the email masked and are not
// stored or forwarded.
package contact
