package database

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	assert.Equal(t, "file::memory:?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dsn(":memory:"))
	assert.Equal(t, "./rocket.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dsn("./rocket.db"))
	assert.Equal(t, "x.db?mode=rw&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dsn("x.db?mode=rw"))
}

func TestMigrateAndUniqueViolation(t *testing.T) {
	db, err := New(":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))
	// Migrate is idempotent.
	require.NoError(t, Migrate(db))

	now := time.Now().UTC()
	insert := "INSERT INTO users (username, email, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?)"
	_, err = db.Exec(insert, "James", "james@rocket.pkm", "hash", now, now)
	require.NoError(t, err)

	_, err = db.Exec(insert, "James", "other@rocket.pkm", "hash", now, now)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("disk I/O error")))
}

func TestForeignKeyCascade(t *testing.T) {
	db, err := New(":memory:")
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, Migrate(db))

	now := time.Now().UTC()
	res, err := db.Exec("INSERT INTO users (username, email, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		"Jessy", "jessy@rocket.pkm", "hash", now, now)
	require.NoError(t, err)
	userID, err := res.LastInsertId()
	require.NoError(t, err)

	_, err = db.Exec("INSERT INTO messages (text, user_id, created_at, updated_at) VALUES (?, ?, ?, ?)",
		"Prepare for trouble", userID, now, now)
	require.NoError(t, err)

	_, err = db.Exec("DELETE FROM users WHERE id = ?", userID)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM messages").Scan(&count))
	assert.Zero(t, count)
}

func TestReset(t *testing.T) {
	db, err := New(":memory:")
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, Migrate(db))

	now := time.Now().UTC()
	_, err = db.Exec("INSERT INTO items (name, date, created_at, updated_at) VALUES (?, ?, ?, ?)", "Javel", now, now, now)
	require.NoError(t, err)

	require.NoError(t, Reset(db))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM items").Scan(&count))
	assert.Zero(t, count)
}
