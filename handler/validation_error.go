package handler

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/queryform/pkg/validator"
)

// ValidationError maps field names to their error messages.
type ValidationError url.Values

// NewValidationError creates an empty validation error.
func NewValidationError() ValidationError {
	return make(ValidationError)
}

// FromValidationErrors converts rule failures into a ValidationError,
// keeping every message per field.
func FromValidationErrors(errs validator.ValidationErrors) ValidationError {
	ve := NewValidationError()
	for _, e := range errs {
		ve.Add(e.Field, e.Message)
	}
	return ve
}

// Error lists the first message of each field in key order.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	keys := url.Values(e)
	var parts []string
	for _, field := range slices.Sorted(maps.Keys(keys)) {
		if msgs := keys[field]; len(msgs) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, msgs[0]))
		}
	}
	return "validation error: " + strings.Join(parts, ", ")
}

func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}
