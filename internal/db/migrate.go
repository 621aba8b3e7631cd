package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent so the
// full list is replayed on each open; PRAGMA user_version records how many
// statements the file has seen.
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
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", len(migrations))); err != nil {
		return fmt.Errorf("recording schema version: %w", err)
	}
	return nil
}

// SchemaVersion reports the number of migrations applied to db.
func SchemaVersion(db *sql.DB) (int, error) {
	var v int
	if err := db.QueryRow("PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return v, nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS capacity (
		id              INTEGER PRIMARY KEY CHECK(id = 1),
		workers         INTEGER NOT NULL DEFAULT 0,
		minutes_per_day REAL NOT NULL DEFAULT 0,
		efficiency      REAL NOT NULL DEFAULT 0,
		configured      INTEGER NOT NULL DEFAULT 0,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS parts (
		seq              INTEGER PRIMARY KEY,
		name             TEXT NOT NULL,
		reference        TEXT NOT NULL,
		time_minutes     REAL NOT NULL CHECK(time_minutes > 0),
		production_order TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS blocked_days (
		day TEXT PRIMARY KEY
	)`,

	`CREATE TABLE IF NOT EXISTS orders (
		uid           TEXT PRIMARY KEY,
		priority      INTEGER NOT NULL UNIQUE,
		display_id    INTEGER NOT NULL,
		name          TEXT NOT NULL,
		total_minutes REAL NOT NULL DEFAULT 0,
		start_date    TEXT,
		end_date      TEXT,
		days_needed   INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS order_items (
		order_uid        TEXT NOT NULL REFERENCES orders(uid) ON DELETE CASCADE,
		seq              INTEGER NOT NULL,
		part_name        TEXT NOT NULL,
		part_ref         TEXT NOT NULL,
		quantity         INTEGER NOT NULL CHECK(quantity > 0),
		time_per_unit    REAL NOT NULL,
		total_time       REAL NOT NULL,
		production_order TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (order_uid, seq)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_orders_priority ON orders(priority)`,
}
