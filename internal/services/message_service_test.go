package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageService_CRUD(t *testing.T) {
	users, messages, _ := seededServices(t)
	ctx := context.Background()

	all, err := messages.GetAllMessages(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Prepare for trouble", all[0].Text)

	james, err := users.FindByLogin(ctx, "James")
	require.NoError(t, err)

	created, err := messages.CreateMessage(ctx, "Hello world", james.ID)
	require.NoError(t, err)
	assert.Equal(t, james.ID, created.UserID)

	got, err := messages.GetMessageByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello world", got.Text)

	require.NoError(t, messages.DeleteMessage(ctx, created.ID))
	_, err = messages.GetMessageByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrMessageNotFound)
	assert.ErrorIs(t, messages.DeleteMessage(ctx, created.ID), ErrMessageNotFound)
}

func TestMessageService_UnknownAuthor(t *testing.T) {
	_, messages, _ := seededServices(t)

	_, err := messages.CreateMessage(context.Background(), "orphan", 999)
	assert.Error(t, err)
}
