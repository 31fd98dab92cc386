// Package db opens and migrates the SQLite store holding the activity list.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// startupPragmas are applied on every open. WAL keeps the serve daemon's
// feed reads from blocking a CLI write to the same file.
var startupPragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA foreign_keys = ON",
}

// OpenDB opens the store at path, creating parent directories as needed, and
// brings the schema up to date. ":memory:" yields a private throwaway store,
// used by tests.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	store, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	for _, pragma := range startupPragmas {
		if _, err := store.Exec(pragma); err != nil {
			store.Close()
			return nil, fmt.Errorf("applying %s: %w", pragma, err)
		}
	}

	if err := Migrate(store); err != nil {
		store.Close()
		return nil, fmt.Errorf("migrating store: %w", err)
	}

	return store, nil
}
