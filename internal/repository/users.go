// Package repository provides persistence implementations for the user store
// and the in-memory item collection.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/avyukov/itemdash/internal/models"
)

// ErrNotFound indicates that no user matched the lookup.
var ErrNotFound = errors.New("user not found")

// ErrDuplicateUsername indicates that an insert collided with an existing username.
var ErrDuplicateUsername = errors.New("username already exists")

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// PostgresUserRepository implements user persistence using a PostgreSQL database.
type PostgresUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository with the given
// database connection. db must be a valid *sql.DB connected to a PostgreSQL instance.
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// FindByUsername fetches the user with the given username.
// Returns ErrNotFound if no such user exists.
func (r *PostgresUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id, username, password FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser inserts a new user row with the given username and password hash.
// The users table carries a unique constraint on username, so a concurrent
// registration of the same name fails here rather than producing a second row;
// that case is reported as ErrDuplicateUsername.
func (r *PostgresUserRepository) CreateUser(ctx context.Context, username, passwordHash string) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO users (username, password) VALUES ($1, $2)`,
		username, passwordHash,
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicateUsername
	}
	return err
}
