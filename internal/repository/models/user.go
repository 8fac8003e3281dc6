package models

import (
	"database/sql"
	"time"
)

// User represents a row of the credential table.
type User struct {
	ID           string         `db:"id"`            // ULID
	Username     string         `db:"username"`      // Login name, unique
	PasswordHash string         `db:"password_hash"` // bcrypt hash of the password
	Name         sql.NullString `db:"name"`          // Optional display name
	CreatedAt    time.Time      `db:"created_at"`    // Timestamp of user creation
	UpdatedAt    time.Time      `db:"updated_at"`    // Timestamp of last update
	DeletedAt    sql.NullTime   `db:"deleted_at"`    // Timestamp of soft deletion, if applicable
}
