package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemService_CRUD(t *testing.T) {
	_, _, items := seededServices(t)
	ctx := context.Background()

	all, err := items.GetAllItems(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Javel", all[0].Name)

	mace, err := items.CreateItem(ctx, "Mace")
	require.NoError(t, err)
	assert.NotZero(t, mace.ID)
	assert.False(t, mace.Date.IsZero())

	got, err := items.GetItemByID(ctx, mace.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mace", got.Name)
	assert.True(t, got.Date.Equal(mace.Date))

	require.NoError(t, items.DeleteItem(ctx, mace.ID))
	_, err = items.GetItemByID(ctx, mace.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.ErrorIs(t, items.DeleteItem(ctx, mace.ID), ErrItemNotFound)
}
