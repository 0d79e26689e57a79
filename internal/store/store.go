// Package store is the sqlite persistence layer for tixd, the
// self-hostable views backend.
package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store wraps the database connection.
type Store struct {
	*sql.DB
}

// Open opens (or creates) the database at path and initializes the
// schema. An empty path places the database in the XDG data directory;
// ":memory:" is accepted for tests.
func Open(path string) (*Store, error) {
	if path == "" {
		var err error
		path, err = defaultPath()
		if err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	// An in-memory sqlite database exists per connection, so the pool
	// must stay at a single connection or queries land on empty copies.
	if strings.Contains(path, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db}, nil
}

func defaultPath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(home, ".local", "share")
	}

	appDir := filepath.Join(dataDir, "tixd")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, "tixd.db"), nil
}
