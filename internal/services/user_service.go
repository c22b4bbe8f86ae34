package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/isdelr/rocket-be/internal/auth"
	"github.com/isdelr/rocket-be/internal/database"
	"github.com/isdelr/rocket-be/internal/models"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	FindByLogin(ctx context.Context, login string) (models.User, error)
	CreateUser(ctx context.Context, username, email, password string) (models.User, error)
	UpdateUser(ctx context.Context, id int64, username, email string) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// UserService provides business logic for user management.
type UserService struct {
	db     *sql.DB
	hasher auth.PasswordHasher
	now    func() time.Time
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB, hasher auth.PasswordHasher) *UserService {
	return &UserService{db: db, hasher: hasher, now: time.Now}
}

const userColumns = "id, username, email, created_at, updated_at"

// GetAllUsers returns every user ordered by id, without password hashes.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	return s.queryOne(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
}

// GetUserByEmail retrieves a single user by their email, including the password hash.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	row := s.db.QueryRowContext(ctx,
		"SELECT id, username, email, password_hash, created_at, updated_at FROM users WHERE email = ?", email)
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

// FindByLogin looks a user up by exact username first, then by exact email.
func (s *UserService) FindByLogin(ctx context.Context, login string) (models.User, error) {
	user, err := s.queryOne(ctx, "SELECT "+userColumns+" FROM users WHERE username = ?", login)
	if !errors.Is(err, ErrUserNotFound) {
		return user, err
	}
	return s.queryOne(ctx, "SELECT "+userColumns+" FROM users WHERE email = ?", login)
}

// CreateUser creates a new user, hashing their password.
func (s *UserService) CreateUser(ctx context.Context, username, email, password string) (models.User, error) {
	hashedPassword, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, err
	}

	now := s.now().UTC()
	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	stmt, err := s.db.PrepareContext(ctx,
		"INSERT INTO users(username, email, password_hash, created_at, updated_at) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return models.User{}, ErrUserExists
		}
		return models.User{}, fmt.Errorf("db error: %w", err)
	}
	if user.ID, err = res.LastInsertId(); err != nil {
		return models.User{}, err
	}

	// Return user without password hash
	return user.Sanitized(), nil
}

// UpdateUser updates a user's non-sensitive information. Empty values keep
// the current ones.
func (s *UserService) UpdateUser(ctx context.Context, id int64, username, email string) (models.User, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET username = COALESCE(NULLIF(?, ''), username),
		    email = COALESCE(NULLIF(?, ''), email),
		    updated_at = ?
		WHERE id = ?`, username, email, s.now().UTC(), id)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return models.User{}, ErrUserExists
		}
		return models.User{}, fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.User{}, ErrUserNotFound
	}
	return s.GetUserByID(ctx, id)
}

// DeleteUser removes a user and, by cascade, their messages.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserService) queryOne(ctx context.Context, query string, arg any) (models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}
