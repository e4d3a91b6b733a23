package contact

import (
	"fmt"

	"github.com/dmitrymomot/queryform/pkg/validator"
)

// User-facing messages.
const (
	MsgRequired        = "This field is required"
	MsgInvalidEmail    = "Please enter a valid email address"
	MsgSelectQueryType = "Please select a query type"
	MsgConsentRequired = "To submit this form, please consent to being contacted"
)

// Validator checks FormInput against a set of query type options.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	options QueryTypes
}

// NewValidator creates a Validator. Empty options fall back to DefaultQueryTypes.
func NewValidator(options QueryTypes) *Validator {
	if len(options) == 0 {
		options = DefaultQueryTypes()
	}
	return &Validator{options: options}
}

// Options returns the query types the validator accepts.
func (v *Validator) Options() QueryTypes {
	return v.options
}

// Validate normalizes in and checks every field independently.
// The result holds one message per failing field and is empty on success.
func (v *Validator) Validate(in FormInput) ValidationResult {
	in = Normalize(in)

	result := make(ValidationResult)
	for _, field := range fieldOrder {
		if msg, ok := v.check(field, in); !ok {
			result[field] = msg
		}
	}
	return result
}

// ValidateField normalizes in and checks a single field. It returns the
// message and false when the field fails, "" and true when it passes.
// Unknown names return ErrUnknownField.
func (v *Validator) ValidateField(field string, in FormInput) (string, bool, error) {
	if !IsField(field) {
		return "", false, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	msg, ok := v.check(field, Normalize(in))
	return msg, ok, nil
}

func (v *Validator) check(field string, in FormInput) (string, bool) {
	err := validator.ApplyFirst(v.rules(field, in)...)
	if err == nil {
		return "", true
	}
	return validator.ExtractValidationErrors(err).First(field), false
}

func (v *Validator) rules(field string, in FormInput) []validator.Rule {
	switch field {
	case FieldFirstName:
		return []validator.Rule{validator.Required(field, in.FirstName).WithMessage(MsgRequired)}
	case FieldLastName:
		return []validator.Rule{validator.Required(field, in.LastName).WithMessage(MsgRequired)}
	case FieldEmail:
		return []validator.Rule{validator.ValidEmail(field, in.Email).WithMessage(MsgInvalidEmail)}
	case FieldQueryType:
		return []validator.Rule{
			validator.Required(field, in.QueryType).WithMessage(MsgSelectQueryType),
			validator.OneOfString(field, in.QueryType, v.options.Values()).WithMessage(MsgSelectQueryType),
		}
	case FieldMessage:
		return []validator.Rule{validator.Required(field, in.Message).WithMessage(MsgRequired)}
	case FieldConsent:
		return []validator.Rule{validator.Accepted(field, in.Consent).WithMessage(MsgConsentRequired)}
	default:
		return nil
	}
}

var defaultValidator = NewValidator(nil)

// Validate checks in against the default query types.
func Validate(in FormInput) ValidationResult {
	return defaultValidator.Validate(in)
}

// ValidateField checks one field against the default query types.
func ValidateField(field string, in FormInput) (string, bool, error) {
	return defaultValidator.ValidateField(field, in)
}
