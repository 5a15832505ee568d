package repository

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens (or creates) a SQLite database at the given path and
// ensures all required tables exist. Pass ":memory:" for an in-memory
// database.
func InitDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set wal mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return db, nil
}

func createTables(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS builds (
			id TEXT PRIMARY KEY,
			troop_id TEXT NOT NULL,
			built_at DATETIME NOT NULL,
			scout_count INTEGER NOT NULL,
			order_count INTEGER NOT NULL,
			warning_count INTEGER NOT NULL,
			packages_credited INTEGER NOT NULL,
			proceeds_rate REAL NOT NULL,
			proceeds_amount REAL NOT NULL,
			dataset TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_builds_built_at ON builds(built_at)`,
		`CREATE INDEX IF NOT EXISTS idx_builds_troop ON builds(troop_id)`,

		`CREATE TABLE IF NOT EXISTS warnings (
			id TEXT NOT NULL,
			build_id TEXT NOT NULL,
			type TEXT NOT NULL,
			source TEXT,
			record_id TEXT,
			raw_value TEXT,
			message TEXT NOT NULL,
			detected_at DATETIME NOT NULL,
			PRIMARY KEY (build_id, id),
			FOREIGN KEY (build_id) REFERENCES builds(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_warnings_build ON warnings(build_id)`,
		`CREATE INDEX IF NOT EXISTS idx_warnings_type ON warnings(type)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}

	return nil
}
