package validator

import (
	"fmt"
	"slices"
	"strings"
)

// InListString passes when value is one of allowedValues. Matching is exact.
func InListString(field, value string, allowedValues []string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowedValues, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %s", strings.Join(allowedValues, ", ")),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowedValues,
			},
		},
	}
}

// OneOfString is InListString for single-choice inputs such as radio groups.
func OneOfString(field, value string, options []string) Rule {
	return InListString(field, value, options)
}
