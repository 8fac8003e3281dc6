package domain

import (
	"context"
	"time"
)

// User represents a domain user object. PasswordHash is a bcrypt hash;
// plaintext passwords never leave the login request.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// NewUser creates a new User instance
func NewUser(username, passwordHash string) *User {
	now := time.Now()
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Validate validates the user
func (u *User) Validate() error {
	if u.Username == "" {
		return NewValidationError("username is required")
	}
	if u.PasswordHash == "" {
		return NewValidationError("password hash is required")
	}
	return nil
}

// UserRepository defines the interface for user data persistence.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	GetUserByID(ctx context.Context, userID string) (*User, error)
}
