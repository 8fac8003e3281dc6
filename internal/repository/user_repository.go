package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quizsheet/internal/domain"
	"quizsheet/internal/repository/models"
	"quizsheet/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db *sqlx.DB
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

// toDomainUser converts a database model to the domain representation.
func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	u := &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Name:         m.Name.String,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		deletedAt := m.DeletedAt.Time
		u.DeletedAt = &deletedAt
	}
	return u
}

// fromDomainUser converts a domain user to its database model.
func fromDomainUser(u *domain.User) *models.User {
	if u == nil {
		return nil
	}
	m := &models.User{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Name:         util.StringToNullString(u.Name),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if u.DeletedAt != nil {
		m.DeletedAt = sql.NullTime{Time: *u.DeletedAt, Valid: true}
	}
	return m
}

// CreateUser inserts a new user into the database.
func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = util.NewULID()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `INSERT INTO users (id, username, password_hash, name, created_at, updated_at)
	          VALUES (:id, :username, :password_hash, :name, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, fromDomainUser(user)); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByUsername retrieves a user by login name.
// Returns nil, nil when no matching user exists.
func (r *sqlxUserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user models.User
	query := `SELECT * FROM users WHERE username = :username AND deleted_at IS NULL`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for GetUserByUsername: %w", err)
	}
	defer stmt.Close()

	args := map[string]interface{}{"username": username}
	if err := stmt.GetContext(ctx, &user, args); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return toDomainUser(&user), nil
}

// GetUserByID retrieves a user by their internal ID.
// Returns nil, nil when no matching user exists.
func (r *sqlxUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	var user models.User
	query := `SELECT * FROM users WHERE id = :id AND deleted_at IS NULL`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for GetUserByID: %w", err)
	}
	defer stmt.Close()

	args := map[string]interface{}{"id": userID}
	if err := stmt.GetContext(ctx, &user, args); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return toDomainUser(&user), nil
}
