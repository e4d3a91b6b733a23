package contact

import (
	"encoding/json"

	"github.com/dmitrymomot/queryform/pkg/validator"
)

// ValidationResult maps a failing field to its single message.
// A field without an entry is valid.
type ValidationResult map[string]string

// Valid reports whether no field failed.
func (r ValidationResult) Valid() bool {
	return len(r) == 0
}

// Has reports whether field failed.
func (r ValidationResult) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Get returns the message for field, or "" when it is valid.
func (r ValidationResult) Get(field string) string {
	return r[field]
}

// Fields returns the failing fields in form order.
func (r ValidationResult) Fields() []string {
	var fields []string
	for _, f := range fieldOrder {
		if r.Has(f) {
			fields = append(fields, f)
		}
	}
	return fields
}

// Err returns the failures as validator.ValidationErrors in form order,
// or nil when the result is valid.
func (r ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	errs := make(validator.ValidationErrors, 0, len(r))
	for _, f := range r.Fields() {
		errs.Add(validator.ValidationError{Field: f, Message: r[f]})
	}
	return errs
}

// MarshalJSON encodes the result as an object; a valid result is {}.
func (r ValidationResult) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]string(r))
}
