package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/isdelr/rocket-be/internal/auth"
	"github.com/isdelr/rocket-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingIssuer struct{}

func (failingIssuer) Issue(int64) (string, error) { return "", auth.ErrSigningKeyMissing }

type stubFinder struct {
	user models.User
	err  error
}

func (s stubFinder) GetUserByEmail(context.Context, string) (models.User, error) {
	return s.user, s.err
}

func newAuthFixture(t *testing.T) (*AuthService, *countingHasher, *auth.TokenManager) {
	t.Helper()
	hasher := newCountingHasher()
	users := NewUserService(newTestDB(t), hasher)
	_, err := users.CreateUser(context.Background(), "James", "james@rocket.pkm", "james123")
	require.NoError(t, err)

	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	return NewAuthService(users, hasher, tokens), hasher, tokens
}

func TestLogin_Success(t *testing.T) {
	svc, _, tokens := newAuthFixture(t)

	res, err := svc.Login(context.Background(), "james@rocket.pkm", "james123")
	require.NoError(t, err)
	assert.Equal(t, "James", res.User.Username)
	assert.Equal(t, "james@rocket.pkm", res.User.Email)
	assert.Empty(t, res.User.PasswordHash)

	claims, err := tokens.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, hasher, _ := newAuthFixture(t)

	res, err := svc.Login(context.Background(), "james@rocket.pkm", "meowth")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, res.Token)
	assert.EqualValues(t, 1, hasher.verifies.Load())
}

func TestLogin_UnknownEmailSkipsHashing(t *testing.T) {
	svc, hasher, _ := newAuthFixture(t)

	res, err := svc.Login(context.Background(), "nobody@rocket.pkm", "james123")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, res.Token)
	assert.Zero(t, hasher.verifies.Load())
}

func TestLogin_LoginIsByEmailOnly(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "James", "james123")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_MalformedStoredHash(t *testing.T) {
	finder := stubFinder{user: models.User{ID: 1, Email: "a@b.c", PasswordHash: "plain"}}
	svc := NewAuthService(finder, newCountingHasher(), auth.NewTokenManager([]byte("k"), time.Hour))

	_, err := svc.Login(context.Background(), "a@b.c", "plain")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_StorageFailure(t *testing.T) {
	boom := errors.New("db down")
	svc := NewAuthService(stubFinder{err: boom}, newCountingHasher(), auth.NewTokenManager([]byte("k"), time.Hour))

	_, err := svc.Login(context.Background(), "a@b.c", "pw")
	assert.ErrorIs(t, err, boom)
}

func TestLogin_SigningFailure(t *testing.T) {
	hasher := newCountingHasher()
	digest, err := hasher.Hash("pw")
	require.NoError(t, err)

	finder := stubFinder{user: models.User{ID: 1, Email: "a@b.c", PasswordHash: digest}}
	svc := NewAuthService(finder, hasher, failingIssuer{})

	res, err := svc.Login(context.Background(), "a@b.c", "pw")
	assert.ErrorIs(t, err, auth.ErrSigningKeyMissing)
	assert.Empty(t, res.Token)
}
