package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestService_FindByName(t *testing.T) {
	store := newTestStore(t)
	svc := NewGuestService(store)
	ctx := context.Background()

	seedFamily(t, store, "Smith Family", [2]string{"Alice", "Smith"})

	detail, err := svc.FindByName(ctx, "  alice ", " SMITH ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", detail.FirstName)
	assert.Equal(t, "Smith Family", detail.FamilyName)

	_, err = svc.FindByName(ctx, "Alice", "Jones")
	assert.ErrorIs(t, err, ErrGuestNotFound)

	_, err = svc.FindByName(ctx, "Alice", "   ")
	assert.ErrorIs(t, err, ErrGuestNameRequired)
}

func TestGuestService_UpdateName_Validation(t *testing.T) {
	store := newTestStore(t)
	svc := NewGuestService(store)
	ctx := context.Background()

	_, smiths := seedFamily(t, store, "Smith Family", [2]string{"Alice", "Smith"})

	updated, err := svc.UpdateName(ctx, smiths[0].ID, " Alicia ", " Smythe ")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.FirstName)
	assert.Equal(t, "Smythe", updated.LastName)

	_, err = svc.UpdateName(ctx, smiths[0].ID, "", "Smythe")
	assert.ErrorIs(t, err, ErrGuestNameRequired)

	_, err = svc.UpdateName(ctx, 99, "A", "B")
	assert.ErrorIs(t, err, ErrGuestNotFound)
}

func TestGuestService_Remove(t *testing.T) {
	store := newTestStore(t)
	svc := NewGuestService(store)
	ctx := context.Background()

	_, smiths := seedFamily(t, store, "Smith Family", [2]string{"Alice", "Smith"})

	removed, err := svc.Remove(ctx, smiths[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", removed.FirstName)

	_, err = svc.Remove(ctx, smiths[0].ID)
	assert.ErrorIs(t, err, ErrGuestNotFound)
}
