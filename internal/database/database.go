package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go sqlite driver
)

// NewSQLXSQLiteDB opens the sqlite credential database and verifies the
// connection. The file is created on first open if it does not exist.
func NewSQLXSQLiteDB(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}

	// The credential table sees one writer at a time; a single connection
	// sidesteps sqlite's multi-writer locking errors.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database %s: %w", path, err)
	}
	return db, nil
}
