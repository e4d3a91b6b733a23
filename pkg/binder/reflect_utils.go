package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// bindToStruct binds values to a struct using reflection.
// tagName specifies which struct tag to use (e.g., "query", "form").
// values is a map of parameter names to their string values.
// bindErr is the specific error to use for binding failures.
func bindToStruct(v any, tagName string, values map[string][]string, bindErr error) error {
	rv, err := structValue(v, bindErr)
	if err != nil {
		return err
	}

	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		// Skip unexported fields
		if !field.CanSet() {
			continue
		}

		// Untagged embedded structs contribute their own fields.
		if fieldType.Anonymous && field.Kind() == reflect.Struct && fieldType.Tag.Get(tagName) == "" {
			if err := bindToStruct(field.Addr().Interface(), tagName, values, bindErr); err != nil {
				return err
			}
			continue
		}

		names, skip := parseFieldTag(fieldType, tagName)
		if skip {
			continue
		}

		fieldValues := lookupValues(values, names)
		if len(fieldValues) == 0 {
			// No value provided, leave as zero value
			continue
		}

		if err := setFieldValue(field, fieldType.Type, fieldValues); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, fieldType.Name, err)
		}
	}

	return nil
}

func structValue(v any, bindErr error) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: target must be a non-nil pointer", bindErr)
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: target must be a pointer to struct", bindErr)
	}
	return rv, nil
}

// lookupValues returns the values of the first name present in values.
func lookupValues(values map[string][]string, names []string) []string {
	for _, name := range names {
		if vs, ok := values[name]; ok && len(vs) > 0 {
			return vs
		}
	}
	return nil
}

// parseFieldTag parses the struct field tag and returns the parameter names
// (primary first, then aliases) and whether to skip.
//
// Tag format: `form:"name"`, `form:"name,alias=old_name"`, `form:"-"`.
// A field without the tag is bound by its lowercased Go name.
func parseFieldTag(field reflect.StructField, tagName string) (names []string, skip bool) {
	tag := field.Tag.Get(tagName)
	if tag == "" {
		return []string{strings.ToLower(field.Name)}, false
	}
	if tag == "-" {
		return nil, true
	}

	parts := strings.Split(tag, ",")
	if parts[0] == "" {
		return nil, true
	}

	names = append(names, parts[0])
	for _, opt := range parts[1:] {
		if alias, ok := strings.CutPrefix(strings.TrimSpace(opt), "alias="); ok && alias != "" {
			names = append(names, alias)
		}
	}
	return names, false
}

// setFieldValue sets the field value from string values.
func setFieldValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	// Handle pointer types
	if fieldType.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Elem()))
		}
		return setFieldValue(field.Elem(), fieldType.Elem(), values)
	}

	if fieldType.Kind() == reflect.Slice {
		return setSliceValue(field, fieldType, values)
	}

	// For non-slice types, use the first value
	if len(values) == 0 {
		return nil
	}
	value := values[0]

	switch fieldType.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)

	case reflect.Bool:
		field.SetBool(parseBool(value))

	default:
		return fmt.Errorf("unsupported type %s", fieldType.Kind())
	}

	return nil
}

// parseBool reads HTML checkbox values. "on", "yes" and the strconv
// spellings of true are true; anything else, including malformed input,
// is false, so a rule on the field reports it instead of the binder.
func parseBool(value string) bool {
	if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
		return b
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "yes":
		return true
	default:
		return false
	}
}

// setSliceValue sets slice field values from string values.
func setSliceValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	elemType := fieldType.Elem()
	slice := reflect.MakeSlice(fieldType, len(values), len(values))

	for i, value := range values {
		if err := setFieldValue(slice.Index(i), elemType, []string{strings.TrimSpace(value)}); err != nil {
			return err
		}
	}

	field.Set(slice)
	return nil
}
