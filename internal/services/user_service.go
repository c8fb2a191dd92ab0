package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"taskdeck/internal/models"
	"taskdeck/internal/password"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	CreateUser(ctx context.Context, email, plaintext string) (models.User, error)
	AuthenticateUser(ctx context.Context, email, plaintext string) (models.User, error)
}

// UserService provides registration and credential checks over the users
// table.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	row := s.db.QueryRowContext(ctx, "SELECT id, email, password_hash, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// GetUserByEmail retrieves a single user by their email, including the
// password hash.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	row := s.db.QueryRowContext(ctx, "SELECT id, email, password_hash, created_at FROM users WHERE email = ?", email)
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// CreateUser registers a new account, hashing the password with a fresh
// salt. A taken email yields ErrEmailTaken and inserts nothing.
func (s *UserService) CreateUser(ctx context.Context, email, plaintext string) (models.User, error) {
	if _, err := s.GetUserByEmail(ctx, email); err == nil {
		return models.User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return models.User{}, err
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	res, err := s.db.ExecContext(ctx, "INSERT INTO users(email, password_hash) VALUES(?, ?)", email, hash)
	if err != nil {
		return models.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, err
	}

	return s.GetUserByID(ctx, id)
}

// AuthenticateUser verifies a user's credentials. An unknown email yields
// ErrNotFound so the login page can distinguish it from a wrong password.
func (s *UserService) AuthenticateUser(ctx context.Context, email, plaintext string) (models.User, error) {
	user, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, err
	}

	if !password.Verify(plaintext, user.PasswordHash) {
		return models.User{}, ErrBadCredentials
	}
	return user, nil
}
