package validator

// Accepted validates that a boolean flag (terms, consent, opt-in) is set to true.
func Accepted(field string, value bool) Rule {
	return Rule{
		Check: func() bool {
			return value
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be accepted",
			TranslationKey: "validation.accepted",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
