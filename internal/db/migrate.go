package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations holds idempotent schema statements, executed in order.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS scheduled_items (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		start_time TEXT NOT NULL,
		duration_min INTEGER NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'active',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_scheduled_items_start ON scheduled_items(start_time)`,
	`CREATE TABLE IF NOT EXISTS preferences (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		role TEXT NOT NULL DEFAULT 'maker',
		peak_start TEXT NOT NULL DEFAULT '',
		peak_end TEXT NOT NULL DEFAULT '',
		switch_limit INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS attention_budgets (
		category TEXT PRIMARY KEY,
		limit_min INTEGER NOT NULL
	)`,
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
