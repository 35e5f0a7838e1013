package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested record doesn't exist
var ErrNotFound = errors.New("record not found")

// DB wraps the SQLite connection and provides the data access layer
type DB struct {
	*sql.DB
}

// Open opens the SQLite database, creating it if necessary.
// The database is stored at ~/.vitals/data.db
func Open() (*DB, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, fmt.Errorf("getting db path: %w", err)
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return openAt(dbPath)
}

func openAt(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &DB{db}, nil
}

// getDBPath returns the path to the SQLite database file
func getDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".vitals", "data.db"), nil
}

// dayKey formats a date as the canonical YYYY-MM-DD column value.
// Dates are compared as strings in SQL; the format sorts lexicographically.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// parseDay parses a YYYY-MM-DD column value as a local calendar day.
// Parsing in the local zone keeps the day from shifting for users west
// of UTC; these values must never round-trip through UTC.
func parseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}
