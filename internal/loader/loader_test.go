package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classfinder/internal/app/models"
	"classfinder/internal/pkg/apperrors"
)

func newTestLoader(t *testing.T) *Loader {
	t.Helper()
	registry, err := models.NewTermRegistry([]string{"fall2022"})
	require.NoError(t, err)
	// No database: these tests only exercise the paths that fail before
	// any connection is touched.
	return New(nil, registry, zerolog.Nop())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadBuildingsInputHandling(t *testing.T) {
	l := newTestLoader(t)

	t.Run("missing file", func(t *testing.T) {
		err := l.LoadBuildings(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := writeFile(t, "buildings.json", `{"buildings": [`)
		err := l.LoadBuildings(context.Background(), path)
		require.Error(t, err)
	})

	t.Run("record without a name fails validation", func(t *testing.T) {
		path := writeFile(t, "buildings.json", `{"buildings": [{"place_id": "abc"}]}`)
		err := l.LoadBuildings(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation")
	})
}

func TestLoadClassesInputHandling(t *testing.T) {
	l := newTestLoader(t)

	t.Run("term outside the allow-list is rejected before reading the file", func(t *testing.T) {
		err := l.LoadClasses(context.Background(), "irrelevant.json", "summer2040")
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrTermNotAllowed))
	})

	t.Run("record without a code fails validation", func(t *testing.T) {
		path := writeFile(t, "classes.json", `{"classes": [
			{"number": 10034, "name": "Math Methods I", "mode": "In Person", "instructors": ["Gong,Q."]}
		]}`)
		err := l.LoadClasses(context.Background(), path, "fall2022")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation")
	})
}

func TestLoadRoomsInputHandling(t *testing.T) {
	l := newTestLoader(t)

	t.Run("term outside the allow-list is rejected before reading the file", func(t *testing.T) {
		err := l.LoadRooms(context.Background(), "irrelevant.json", "summer2040")
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrTermNotAllowed))
	})

	t.Run("missing file", func(t *testing.T) {
		err := l.LoadRooms(context.Background(), filepath.Join(t.TempDir(), "nope.json"), "fall2022")
		require.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := writeFile(t, "rooms.json", `{"rooms": [`)
		err := l.LoadRooms(context.Background(), path, "fall2022")
		require.Error(t, err)
	})

	t.Run("record without a building number fails validation", func(t *testing.T) {
		path := writeFile(t, "rooms.json", `{"rooms": [{"name": "Thim Lecture 003"}]}`)
		err := l.LoadRooms(context.Background(), path, "fall2022")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation")
	})
}

func TestIndexRooms(t *testing.T) {
	number := "003"
	index := indexRooms([]RoomRecord{
		{BuildingNumber: 14, Name: "Thim Lecture 003", Number: &number},
		{BuildingNumber: 23, Name: "McHenry Lib 1240"},
	})

	require.Len(t, index, 2)
	assert.Equal(t, int64(14), index["Thim Lecture 003"].BuildingNumber)
	assert.Equal(t, int64(23), index["McHenry Lib 1240"].BuildingNumber)
}

func TestExpandMeetings(t *testing.T) {
	t.Run("pairs become single slots", func(t *testing.T) {
		meetings := expandMeetings([][]string{
			{"Soc Sci 1 414", "Th 09:45AM-01:15PM"},
		})
		assert.Equal(t, []models.Meeting{
			{Place: "Soc Sci 1 414", Time: "Th 09:45AM-01:15PM"},
		}, meetings)
	})

	t.Run("three-element entries expand to two slots in one place", func(t *testing.T) {
		meetings := expandMeetings([][]string{
			{"J Bask Aud 101", "M 08:00AM-09:05AM", "W 08:00AM-09:05AM"},
		})
		assert.Equal(t, []models.Meeting{
			{Place: "J Bask Aud 101", Time: "M 08:00AM-09:05AM"},
			{Place: "J Bask Aud 101", Time: "W 08:00AM-09:05AM"},
		}, meetings)
	})

	t.Run("short entries are dropped", func(t *testing.T) {
		meetings := expandMeetings([][]string{{"TBD"}, {}})
		assert.Empty(t, meetings)
	})
}
