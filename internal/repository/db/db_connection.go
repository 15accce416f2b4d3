package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

// sqlitePragmas are applied on every open, in order.
var sqlitePragmas = []string{
	"PRAGMA journal_mode = WAL;",
	"PRAGMA busy_timeout = 5000;",
	"PRAGMA synchronous = NORMAL;",
}

const schemaSignalState = `
CREATE TABLE IF NOT EXISTS signal_state (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    green BOOLEAN NOT NULL,
    yellow BOOLEAN NOT NULL,
    red BOOLEAN NOT NULL,
    status TEXT NOT NULL,
    category TEXT,
    temperature REAL,
    updated_at TIMESTAMP NOT NULL,
    CHECK (green + yellow + red <= 1)
);
`

// InitDB opens/creates the SQLite file at path and ensures the schema exists.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// single writer; the signal slot is one row
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range sqlitePragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{schemaSignalState} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
