// Package service provides the business logic for authentication and the
// item collection, delegating persistence to repository interfaces.
package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/avyukov/itemdash/internal/auth"
	"github.com/avyukov/itemdash/internal/models"
	"github.com/avyukov/itemdash/internal/repository"
)

// bcryptCost is the fixed work factor for password hashing.
const bcryptCost = 10

// ErrUsernameTaken indicates a registration attempt with a username that
// already exists.
var ErrUsernameTaken = errors.New("username already exists")

// ErrInvalidCredentials indicates a login attempt with an unknown username or
// a wrong password. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid username or password")

// UserRepository defines the persistence operations required by the
// authentication service.
type UserRepository interface {
	// FindByUsername fetches a user by exact username match.
	// Returns repository.ErrNotFound if no such user exists.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// CreateUser inserts a new user row.
	// Returns repository.ErrDuplicateUsername on a username collision.
	CreateUser(ctx context.Context, username, passwordHash string) error
}

// AuthService implements registration and login on top of a UserRepository.
type AuthService struct {
	repo   UserRepository
	secret []byte
}

// NewAuthService constructs an AuthService using the provided repository and
// token signing secret.
func NewAuthService(repo UserRepository, secret []byte) *AuthService {
	return &AuthService{repo: repo, secret: secret}
}

// Register hashes the password and inserts a new user.
// Returns ErrUsernameTaken if the username is already in use, either at the
// pre-check or at insert time; the insert-time check is what closes the race
// between two concurrent registrations of the same name.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("check user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.CreateUser(ctx, username, string(hash)); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Login verifies the credentials and issues a signed session token.
// An unknown username and a wrong password both return ErrInvalidCredentials,
// so a caller cannot probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("compare password: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, user.Username, s.secret)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}
