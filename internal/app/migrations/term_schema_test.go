package migrations

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classfinder/internal/app/models"
)

func TestModeCheckList(t *testing.T) {
	list := modeCheckList()
	assert.Equal(t,
		"'In Person', 'Hybrid', 'Asynchronous Online', 'Synchronous Online'",
		list)
}

func TestTermSchemaStatements(t *testing.T) {
	tables := models.TermTables{
		Classes:     "classes_fall2022",
		Instructors: "instructors_fall2022",
		Meetings:    "meetings_fall2022",
	}
	ddl := strings.Join(termSchemaStatements(tables), "\n")

	t.Run("instructors and meetings cascade with their class", func(t *testing.T) {
		cascade := "REFERENCES classes_fall2022(number) ON DELETE CASCADE ON UPDATE CASCADE"
		assert.Equal(t, 2, strings.Count(ddl, cascade))
	})

	t.Run("mode column is constrained to the delivery modes", func(t *testing.T) {
		assert.Contains(t, ddl,
			"CHECK (mode IN ('In Person', 'Hybrid', 'Asynchronous Online', 'Synchronous Online'))")
	})

	t.Run("last_updated trigger fires on insert and update", func(t *testing.T) {
		assert.Contains(t, ddl, "DROP TRIGGER IF EXISTS classes_fall2022_set_last_updated ON classes_fall2022;")
		assert.Contains(t, ddl, "BEFORE INSERT OR UPDATE ON classes_fall2022")
		assert.Contains(t, ddl, "EXECUTE FUNCTION set_last_updated()")
	})
}

func TestInitMigrationSchema(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)
	ddl := string(content)

	t.Run("rooms cascade when their building goes", func(t *testing.T) {
		assert.Contains(t, ddl, "REFERENCES buildings(number) ON DELETE CASCADE ON UPDATE CASCADE")
	})

	t.Run("trigger function truncates UTC time to the second", func(t *testing.T) {
		assert.Contains(t, ddl, "date_trunc('second', now() AT TIME ZONE 'utc')")
	})
}
