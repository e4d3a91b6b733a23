package binder

import (
	"fmt"
	"net/http"
)

// Path creates a path parameter binder using the provided extractor,
// typically chi.URLParam:
//
//	type FieldRequest struct {
//		Field string `path:"field"`
//	}
//
//	r.Post("/validate/{field}", handler.Wrap(h,
//		handler.WithBinders[handler.Context, FieldRequest](binder.Path(chi.URLParam)),
//	))
//
// Only fields carrying a `path` tag are considered.
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrFailedToParsePath)
		}

		rv, err := structValue(v, ErrFailedToParsePath)
		if err != nil {
			return err
		}

		rt := rv.Type()

		for i := range rv.NumField() {
			field := rv.Field(i)
			fieldType := rt.Field(i)

			if !field.CanSet() || fieldType.Tag.Get("path") == "" {
				continue
			}

			names, skip := parseFieldTag(fieldType, "path")
			if skip {
				continue
			}

			value := extractor(r, names[0])
			if value == "" {
				continue
			}

			if err := setFieldValue(field, fieldType.Type, []string{value}); err != nil {
				return fmt.Errorf("%w: field %s: %v", ErrFailedToParsePath, fieldType.Name, err)
			}
		}

		return nil
	}
}
