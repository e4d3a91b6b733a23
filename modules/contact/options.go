package contact

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// QueryTypeOption is one selectable query type.
type QueryTypeOption struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// QueryTypes is the ordered set of selectable query types.
type QueryTypes []QueryTypeOption

// DefaultQueryTypes returns the built-in options.
func DefaultQueryTypes() QueryTypes {
	return QueryTypes{
		{Value: "general", Label: "General Enquiry"},
		{Value: "support", Label: "Support Request"},
	}
}

// Values returns the option values in order.
func (q QueryTypes) Values() []string {
	values := make([]string, len(q))
	for i, o := range q {
		values[i] = o.Value
	}
	return values
}

// Contains reports whether value is one of the options. Matching is exact.
func (q QueryTypes) Contains(value string) bool {
	for _, o := range q {
		if o.Value == value {
			return true
		}
	}
	return false
}

// Label returns the label for value, or "" if value is not an option.
func (q QueryTypes) Label(value string) string {
	for _, o := range q {
		if o.Value == value {
			return o.Label
		}
	}
	return ""
}

// Validate checks that every option has a value and values are unique.
func (q QueryTypes) Validate() error {
	if len(q) == 0 {
		return fmt.Errorf("%w: no options defined", ErrInvalidQueryTypes)
	}
	seen := make(map[string]bool, len(q))
	for i, o := range q {
		if strings.TrimSpace(o.Value) == "" {
			return fmt.Errorf("%w: option %d has an empty value", ErrInvalidQueryTypes, i)
		}
		if seen[o.Value] {
			return fmt.Errorf("%w: duplicate value %q", ErrInvalidQueryTypes, o.Value)
		}
		seen[o.Value] = true
	}
	return nil
}

type queryTypesFile struct {
	QueryTypes QueryTypes `yaml:"query_types"`
}

// ParseQueryTypes decodes options from YAML:
//
//	query_types:
//	  - value: general
//	    label: General Enquiry
//	  - value: support
//	    label: Support Request
//
// An empty document yields the defaults.
func ParseQueryTypes(r io.Reader) (QueryTypes, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQueryTypes, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return DefaultQueryTypes(), nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file queryTypesFile
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQueryTypes, err)
	}
	if len(file.QueryTypes) == 0 {
		return DefaultQueryTypes(), nil
	}

	options := make(QueryTypes, len(file.QueryTypes))
	for i, o := range file.QueryTypes {
		o.Value = strings.TrimSpace(o.Value)
		o.Label = strings.TrimSpace(o.Label)
		if o.Label == "" {
			o.Label = o.Value
		}
		options[i] = o
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return options, nil
}

// LoadQueryTypes reads options from a YAML file. An empty path returns the defaults.
func LoadQueryTypes(path string) (QueryTypes, error) {
	if path == "" {
		return DefaultQueryTypes(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQueryTypes, err)
	}
	defer f.Close()
	return ParseQueryTypes(f)
}
