package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/isdelr/rocket-be/internal/auth"
	"github.com/isdelr/rocket-be/internal/models"
	"github.com/rs/zerolog/log"
)

// CredentialFinder looks up a stored credential by email, including its hash.
type CredentialFinder interface {
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
}

// AuthServiceProvider defines the interface for authentication.
type AuthServiceProvider interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	IssueFor(user models.User) (LoginResult, error)
}

// LoginResult is the outcome of a successful authentication.
type LoginResult struct {
	Token string
	User  models.User
}

// AuthService verifies credentials and mints tokens.
type AuthService struct {
	users  CredentialFinder
	hasher auth.PasswordHasher
	tokens auth.TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(users CredentialFinder, hasher auth.PasswordHasher, tokens auth.TokenIssuer) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Login looks the credential up by email, verifies the password and issues a
// token bound to the user's id. An unknown email returns ErrUserNotFound
// without touching the hasher.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		if errors.Is(err, auth.ErrMalformedHash) {
			log.Error().Err(err).Int64("user_id", user.ID).Msg("Stored password hash is malformed")
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}
	if !ok {
		return LoginResult{}, ErrInvalidCredentials
	}

	return s.IssueFor(user)
}

// IssueFor mints a token for an already trusted user, e.g. right after
// registration.
func (s *AuthService) IssueFor(user models.User) (LoginResult, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to issue token: %w", err)
	}
	return LoginResult{Token: token, User: user.Sanitized()}, nil
}
