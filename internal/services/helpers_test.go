package services

import (
	"context"
	"database/sql"
	"sync/atomic"
	"testing"

	"github.com/isdelr/rocket-be/internal/auth"
	"github.com/isdelr/rocket-be/internal/database"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })
	return db
}

// countingHasher wraps a real hasher and records how often Verify runs.
type countingHasher struct {
	inner    auth.PasswordHasher
	verifies atomic.Int32
}

func newCountingHasher() *countingHasher {
	return &countingHasher{inner: auth.NewBcryptHasher(bcrypt.MinCost)}
}

func (h *countingHasher) Hash(plaintext string) (string, error) {
	return h.inner.Hash(plaintext)
}

func (h *countingHasher) Verify(plaintext, digest string) (bool, error) {
	h.verifies.Add(1)
	return h.inner.Verify(plaintext, digest)
}

func seededServices(t *testing.T) (*UserService, *MessageService, *ItemService) {
	t.Helper()
	db := newTestDB(t)
	users := NewUserService(db, auth.NewBcryptHasher(bcrypt.MinCost))
	messages := NewMessageService(db)
	items := NewItemService(db)
	require.NoError(t, SeedDemoData(context.Background(), users, messages, items))
	return users, messages, items
}
