// Package sqlite stores the fleet in a single SQLite file through the pure Go
// modernc.org/sqlite driver.
//
// The connection pool is limited to one connection, so transactions run one
// at a time and a unit of work never observes another one half done.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// DefaultPath is used when Open is given an empty path.
const DefaultPath = "spacefleet.db"

const schema = `
CREATE TABLE IF NOT EXISTS rockets (
	name         TEXT PRIMARY KEY,
	status       TEXT NOT NULL,
	mission_name TEXT
);
CREATE INDEX IF NOT EXISTS idx_rockets_mission_name ON rockets (mission_name);
CREATE TABLE IF NOT EXISTS missions (
	name              TEXT PRIMARY KEY,
	status            TEXT NOT NULL,
	all_rockets_count INTEGER NOT NULL,
	in_space_count    INTEGER NOT NULL,
	in_repair_count   INTEGER NOT NULL
);`

// Open opens or creates the database file at path and applies the schema.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		path = DefaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return db, nil
}

// querier is implemented by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
