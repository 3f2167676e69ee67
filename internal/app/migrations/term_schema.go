package migrations

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"classfinder/internal/app/models"
	"classfinder/internal/pkg/logger"
)

// Per-term tables are sharded by name (classes_fall2022, ...) instead of
// carrying a term column. Table names are only ever taken from the term
// registry, so the fmt.Sprintf calls below never see request input.

// termSchemaStatements renders the DDL for one term's table set.
func termSchemaStatements(tables models.TermTables) []string {
	return []string{
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			number       BIGINT PRIMARY KEY,
			code         TEXT NOT NULL UNIQUE,
			name         TEXT NOT NULL,
			mode         TEXT NOT NULL CHECK (mode IN (%s)),
			last_updated TIMESTAMP NOT NULL DEFAULT date_trunc('second', now() AT TIME ZONE 'utc')
		);`, tables.Classes, modeCheckList()),

		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			class_number BIGINT NOT NULL REFERENCES %s(number) ON DELETE CASCADE ON UPDATE CASCADE,
			instructor   TEXT NOT NULL,
			PRIMARY KEY (class_number, instructor)
		);`, tables.Instructors, tables.Classes),

		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			class_number  BIGINT NOT NULL REFERENCES %s(number) ON DELETE CASCADE ON UPDATE CASCADE,
			meeting_place TEXT NOT NULL,
			meeting_time  TEXT NOT NULL,
			PRIMARY KEY (class_number, meeting_place, meeting_time)
		);`, tables.Meetings, tables.Classes),

		// The trigger rewrites last_updated on every insert and update,
		// whatever columns changed. Recreated so reruns pick up function changes.
		fmt.Sprintf(`DROP TRIGGER IF EXISTS %s_set_last_updated ON %s;`, tables.Classes, tables.Classes),
		fmt.Sprintf(`
		CREATE TRIGGER %s_set_last_updated
			BEFORE INSERT OR UPDATE ON %s
			FOR EACH ROW EXECUTE FUNCTION set_last_updated();`, tables.Classes, tables.Classes),
	}
}

// EnsureTermSchema creates the classes/instructors/meetings tables for one
// term if they do not exist, with cascading foreign keys into the classes
// table and the last_updated trigger attached.
func EnsureTermSchema(ctx context.Context, db *pgxpool.Pool, tables models.TermTables) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, stmt := range termSchemaStatements(tables) {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure term tables %q: %w", tables.Classes, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// EnsureAllTermSchemas creates the table set for every term in the registry.
func EnsureAllTermSchemas(ctx context.Context, db *pgxpool.Pool, registry *models.TermRegistry) error {
	for _, term := range registry.Terms() {
		tables, err := registry.Tables(term)
		if err != nil {
			return err
		}
		if err := EnsureTermSchema(ctx, db, tables); err != nil {
			return err
		}
		logger.Debug().Str("term", string(term)).Msg("Term schema ensured")
	}
	return nil
}

// modeCheckList renders the delivery-mode enum as a quoted SQL list.
func modeCheckList() string {
	modes := models.ClassModes()
	quoted := make([]string, len(modes))
	for i, m := range modes {
		quoted[i] = "'" + string(m) + "'"
	}
	return strings.Join(quoted, ", ")
}
