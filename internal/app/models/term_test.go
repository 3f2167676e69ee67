package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classfinder/internal/pkg/apperrors"
)

func TestNewTermRegistry(t *testing.T) {
	t.Run("accepts well-formed terms", func(t *testing.T) {
		registry, err := NewTermRegistry([]string{"fall2022", "winter2023"})
		require.NoError(t, err)
		assert.True(t, registry.Contains("fall2022"))
		assert.True(t, registry.Contains("winter2023"))
		assert.False(t, registry.Contains("spring2023"))
	})

	t.Run("rejects empty list", func(t *testing.T) {
		_, err := NewTermRegistry(nil)
		require.Error(t, err)
	})

	t.Run("rejects malformed identifiers", func(t *testing.T) {
		for _, bad := range []string{
			"Fall2022",             // uppercase
			"fall22",               // short year
			"fall 2022",            // whitespace
			"fall2022; DROP TABLE", // injection attempt
			"classes_fall2022",     // underscore
			"2022fall",             // digits first
		} {
			_, err := NewTermRegistry([]string{bad})
			assert.Error(t, err, "expected rejection of %q", bad)
		}
	})
}

func TestTermRegistryTables(t *testing.T) {
	registry, err := NewTermRegistry([]string{"fall2022"})
	require.NoError(t, err)

	t.Run("maps a known term to its table set", func(t *testing.T) {
		tables, err := registry.Tables("fall2022")
		require.NoError(t, err)
		assert.Equal(t, "classes_fall2022", tables.Classes)
		assert.Equal(t, "instructors_fall2022", tables.Instructors)
		assert.Equal(t, "meetings_fall2022", tables.Meetings)
	})

	t.Run("refuses a term outside the allow-list", func(t *testing.T) {
		_, err := registry.Tables("summer2023")
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrTermNotAllowed))
	})

	t.Run("refuses raw injection input", func(t *testing.T) {
		_, err := registry.Tables("fall2022; DROP TABLE buildings--")
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrTermNotAllowed))
	})
}

func TestTermRegistryTerms(t *testing.T) {
	registry, err := NewTermRegistry([]string{"winter2023", "fall2022", "spring2023"})
	require.NoError(t, err)

	terms := registry.Terms()
	assert.Equal(t, []Term{"fall2022", "spring2023", "winter2023"}, terms)
}
