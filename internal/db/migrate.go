package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is re-run on each
// open, so statements must be idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// One row per named state slot; payload is a serialized snapshot document.
	`CREATE TABLE IF NOT EXISTS planner_slots (
		name       TEXT PRIMARY KEY,
		payload    BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// Write counter, bumped on every save.
	`ALTER TABLE planner_slots ADD COLUMN revision INTEGER NOT NULL DEFAULT 1`,

	`CREATE INDEX IF NOT EXISTS idx_planner_slots_updated ON planner_slots(updated_at)`,
}
