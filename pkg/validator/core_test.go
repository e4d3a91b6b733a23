package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/queryform/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "email",
			Message: "is required",
		})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("joins multiple errors in order", func(t *testing.T) {
		errs := validator.ValidationErrors{
			{Field: "firstName", Message: "is required"},
			{Field: "email", Message: "is invalid"},
		}
		assert.Equal(t, "validation failed: firstName: is required; email: is invalid", errs.Error())
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "email", Message: "is required"},
		{Field: "email", Message: "is invalid"},
		{Field: "consent", Message: "must be accepted"},
	}

	t.Run("has", func(t *testing.T) {
		assert.True(t, errs.Has("email"))
		assert.True(t, errs.Has("consent"))
		assert.False(t, errs.Has("message"))
	})

	t.Run("get returns all messages for field", func(t *testing.T) {
		assert.Equal(t, []string{"is required", "is invalid"}, errs.Get("email"))
		assert.Nil(t, errs.Get("message"))
	})

	t.Run("first returns first message or empty", func(t *testing.T) {
		assert.Equal(t, "is required", errs.First("email"))
		assert.Equal(t, "", errs.First("message"))
	})

	t.Run("fields are unique and ordered", func(t *testing.T) {
		assert.Equal(t, []string{"email", "consent"}, errs.Fields())
	})

	t.Run("is empty", func(t *testing.T) {
		assert.False(t, errs.IsEmpty())
		assert.True(t, validator.ValidationErrors{}.IsEmpty())
	})
}

func TestValidationErrors_Translate(t *testing.T) {
	t.Run("rewrites messages with translation key", func(t *testing.T) {
		errs := validator.ValidationErrors{
			{Field: "email", Message: "must be a valid email address", TranslationKey: "validation.email"},
			{Field: "note", Message: "custom"},
		}

		errs.Translate(func(key string, values map[string]any) string {
			return "translated:" + key
		})

		assert.Equal(t, "translated:validation.email", errs[0].Message)
		assert.Equal(t, "custom", errs[1].Message)
	})

	t.Run("nil fn is no-op", func(t *testing.T) {
		errs := validator.ValidationErrors{{Field: "email", Message: "keep", TranslationKey: "validation.email"}}
		errs.Translate(nil)
		assert.Equal(t, "keep", errs[0].Message)
	})
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "Jane"),
			validator.ValidEmail("email", "jane@example.com"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failing rule", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", ""),
			validator.ValidEmail("email", "nope"),
			validator.Accepted("consent", true),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, []string{"name", "email"}, errs.Fields())
	})
}

func TestApplyFirst(t *testing.T) {
	t.Run("stops at first failure", func(t *testing.T) {
		err := validator.ApplyFirst(
			validator.Required("email", ""),
			validator.ValidEmail("email", ""),
		)
		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 1)
		assert.Equal(t, "field is required", errs[0].Message)
	})

	t.Run("returns nil when all pass", func(t *testing.T) {
		assert.NoError(t, validator.ApplyFirst(validator.Required("email", "a@b.co")))
	})
}

func TestRule_WithMessage(t *testing.T) {
	rule := validator.Required("firstName", "").WithMessage("This field is required")

	assert.False(t, rule.Check())
	assert.Equal(t, "This field is required", rule.Error.Message)
	assert.Equal(t, "validation.required", rule.Error.TranslationKey)

	original := validator.Required("firstName", "")
	assert.Equal(t, "field is required", original.Error.Message)
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})

	t.Run("wrapped validation errors", func(t *testing.T) {
		inner := validator.ValidationErrors{{Field: "email", Message: "bad"}}
		wrapped := fmt.Errorf("submit: %w", inner)

		errs := validator.ExtractValidationErrors(wrapped)
		require.NotNil(t, errs)
		assert.Equal(t, "bad", errs.First("email"))
	})

	t.Run("other error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
	})
}

func TestIsValidationError(t *testing.T) {
	errs := validator.ValidationErrors{{Field: "email", Message: "bad"}}

	assert.True(t, validator.IsValidationError(errs))
	assert.True(t, validator.IsValidationError(fmt.Errorf("wrap: %w", errs)))
	assert.False(t, validator.IsValidationError(errors.New("boom")))
	assert.False(t, validator.IsValidationError(nil))

	assert.ErrorIs(t, errs, validator.ErrValidationFailed)
	assert.ErrorIs(t, fmt.Errorf("wrap: %w", errs), validator.ErrValidationFailed)
}
