package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/queryform/pkg/sanitizer"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases domain", "John.Doe@Example.COM", "John.Doe@example.com"},
		{"trims", "  jane@example.com  ", "jane@example.com"},
		{"keeps consecutive dots in local part", "a..b@example.com", "a..b@example.com"},
		{"no at sign is only trimmed", "  Not-An-Email ", "Not-An-Email"},
		{"two at signs untouched", "a@b@C.com", "a@b@C.com"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.NormalizeEmail(tt.input))
		})
	}
}

func TestMaskEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"masks local part", "johndoe@example.com", "j******@example.com"},
		{"single char local part", "j@example.com", "*@example.com"},
		{"multi-byte local part", "élodie@example.fr", "é*****@example.fr"},
		{"invalid returned as is", "not-an-email", "not-an-email"},
		{"empty local part", "@example.com", "@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.MaskEmail(tt.input))
		})
	}
}
