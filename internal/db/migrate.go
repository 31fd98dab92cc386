package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are run in order on every open. Statements must stay idempotent:
// CREATE TABLE IF NOT EXISTS for new tables, ALTER TABLE for added columns
// (duplicate-column errors are tolerated below).
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS activities (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		weekly_minutes INTEGER NOT NULL CHECK(weekly_minutes > 0),
		category       TEXT NOT NULL,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_category ON activities(category)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
