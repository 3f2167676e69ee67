package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classfinder/internal/app/models"
	"classfinder/internal/pkg/apperrors"
)

// recordingClassReader records whether the repository was ever reached.
type recordingClassReader struct {
	called  bool
	classes []models.ClassDetail
	err     error
}

func (r *recordingClassReader) GetByTerm(ctx context.Context, term models.Term) ([]models.ClassDetail, error) {
	r.called = true
	return r.classes, r.err
}

func newTestRegistry(t *testing.T) *models.TermRegistry {
	t.Helper()
	registry, err := models.NewTermRegistry([]string{"fall2022", "winter2023"})
	require.NoError(t, err)
	return registry
}

func TestGetClassesByTerm(t *testing.T) {
	t.Run("passes through for an allow-listed term", func(t *testing.T) {
		reader := &recordingClassReader{
			classes: []models.ClassDetail{
				{Class: models.Class{Number: 10034, Code: "AM10-01", Name: "Math Methods I", Mode: models.ModeInPerson}},
			},
		}
		service := NewClassService(reader, newTestRegistry(t))

		classes, err := service.GetClassesByTerm(context.Background(), "fall2022")
		require.NoError(t, err)
		assert.True(t, reader.called)
		require.Len(t, classes, 1)
		assert.Equal(t, int64(10034), classes[0].Number)
	})

	t.Run("rejects an unknown term before any repository call", func(t *testing.T) {
		reader := &recordingClassReader{}
		service := NewClassService(reader, newTestRegistry(t))

		_, err := service.GetClassesByTerm(context.Background(), "summer2040")
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrTermNotAllowed))
		assert.False(t, reader.called, "repository must not be reached for an unknown term")
	})

	t.Run("empty term table yields an empty slice", func(t *testing.T) {
		reader := &recordingClassReader{classes: []models.ClassDetail{}}
		service := NewClassService(reader, newTestRegistry(t))

		classes, err := service.GetClassesByTerm(context.Background(), "winter2023")
		require.NoError(t, err)
		assert.NotNil(t, classes)
		assert.Empty(t, classes)
	})

	t.Run("wraps repository failures", func(t *testing.T) {
		reader := &recordingClassReader{err: apperrors.ErrQueryFailed}
		service := NewClassService(reader, newTestRegistry(t))

		_, err := service.GetClassesByTerm(context.Background(), "fall2022")
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrQueryFailed))
	})
}
