package contact_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/queryform/modules/contact"
)

func TestQueryTypes(t *testing.T) {
	q := contact.DefaultQueryTypes()

	assert.Equal(t, []string{"general", "support"}, q.Values())
	assert.True(t, q.Contains("support"))
	assert.False(t, q.Contains("Support"))
	assert.False(t, q.Contains(""))
	assert.Equal(t, "General Enquiry", q.Label("general"))
	assert.Empty(t, q.Label("sales"))
	assert.NoError(t, q.Validate())
}

func TestQueryTypes_Validate(t *testing.T) {
	tests := []struct {
		name    string
		options contact.QueryTypes
	}{
		{"empty", nil},
		{"blank value", contact.QueryTypes{{Value: " ", Label: "Blank"}}},
		{"duplicate", contact.QueryTypes{{Value: "a"}, {Value: "a"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.options.Validate(), contact.ErrInvalidQueryTypes)
		})
	}
}

func TestParseQueryTypes(t *testing.T) {
	t.Run("empty document yields defaults", func(t *testing.T) {
		got, err := contact.ParseQueryTypes(strings.NewReader("  \n"))
		require.NoError(t, err)
		assert.Equal(t, contact.DefaultQueryTypes(), got)
	})

	t.Run("empty list yields defaults", func(t *testing.T) {
		got, err := contact.ParseQueryTypes(strings.NewReader("query_types: []\n"))
		require.NoError(t, err)
		assert.Equal(t, contact.DefaultQueryTypes(), got)
	})

	t.Run("trims and defaults labels", func(t *testing.T) {
		got, err := contact.ParseQueryTypes(strings.NewReader("query_types:\n  - value: ' sales '\n"))
		require.NoError(t, err)
		assert.Equal(t, contact.QueryTypes{{Value: "sales", Label: "sales"}}, got)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		_, err := contact.ParseQueryTypes(strings.NewReader("options:\n  - value: sales\n"))
		assert.ErrorIs(t, err, contact.ErrInvalidQueryTypes)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		_, err := contact.ParseQueryTypes(strings.NewReader("query_types:\n  - value: a\n  - value: a\n"))
		assert.ErrorIs(t, err, contact.ErrInvalidQueryTypes)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := contact.ParseQueryTypes(strings.NewReader("query_types: [\n"))
		assert.ErrorIs(t, err, contact.ErrInvalidQueryTypes)
	})
}

func TestLoadQueryTypes(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		got, err := contact.LoadQueryTypes(filepath.Join("testdata", "query_types.yaml"))
		require.NoError(t, err)
		assert.Equal(t, []string{"general", "support", "billing"}, got.Values())
		assert.Equal(t, "billing", got.Label("billing"))
	})

	t.Run("empty path yields defaults", func(t *testing.T) {
		got, err := contact.LoadQueryTypes("")
		require.NoError(t, err)
		assert.Equal(t, contact.DefaultQueryTypes(), got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := contact.LoadQueryTypes(filepath.Join("testdata", "missing.yaml"))
		assert.ErrorIs(t, err, contact.ErrInvalidQueryTypes)
	})
}
