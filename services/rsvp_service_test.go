package services

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsvp.link/configs/configslog"
	"rsvp.link/models"
	"rsvp.link/repositories"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	os.Exit(m.Run())
}

func newTestStore(t *testing.T) repositories.IStore {
	t.Helper()
	store, err := repositories.NewCSVStore(t.TempDir())
	require.NoError(t, err)
	return store
}

// seedFamily creates a family with the given members and returns the family
// plus the guests in order.
func seedFamily(t *testing.T, store repositories.IStore, familyName string, names ...[2]string) (*models.Family, []models.Guest) {
	t.Helper()
	ctx := context.Background()
	family, err := store.InsertFamily(ctx, familyName)
	require.NoError(t, err)
	guests := make([]models.Guest, 0, len(names))
	for _, n := range names {
		g, err := store.InsertGuest(ctx, family.ID, n[0], n[1], false)
		require.NoError(t, err)
		guests = append(guests, *g)
	}
	return family, guests
}

func TestRSVPService_Submit_ConsolidatesWithinFamily(t *testing.T) {
	store := newTestStore(t)
	svc := NewRSVPService(store)
	ctx := context.Background()

	_, smiths := seedFamily(t, store, "Smith Family",
		[2]string{"Alice", "Smith"}, [2]string{"Bob", "Smith"})
	alice, bob := smiths[0], smiths[1]

	first, err := svc.Submit(ctx, alice.ID, true, "vegetarian", "")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, first.GuestID)
	assert.True(t, first.WillAttend)

	// Bob's submission lands in the same row. The row's id and its guest id
	// both stay where Alice's submission put them.
	second, err := svc.Submit(ctx, bob.ID, false, "", "can't make it")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, alice.ID, second.GuestID)
	assert.False(t, second.WillAttend)
	assert.Empty(t, second.DietaryRestrictions, "the overwrite clears fields the update omitted")
	assert.Equal(t, "can't make it", second.IndividualNotes)

	rsvps, err := store.ListRSVPs(ctx)
	require.NoError(t, err)
	assert.Len(t, rsvps, 1, "a family holds at most one consolidated row")
}

func TestRSVPService_Submit_FamiliesAreIndependent(t *testing.T) {
	store := newTestStore(t)
	svc := NewRSVPService(store)
	ctx := context.Background()

	_, smiths := seedFamily(t, store, "Smith Family", [2]string{"Alice", "Smith"})
	_, joneses := seedFamily(t, store, "Jones Family", [2]string{"Carol", "Jones"})

	_, err := svc.Submit(ctx, smiths[0].ID, true, "", "")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, joneses[0].ID, false, "", "")
	require.NoError(t, err)

	rsvps, err := store.ListRSVPs(ctx)
	require.NoError(t, err)
	assert.Len(t, rsvps, 2)
}

func TestRSVPService_Submit_RowOutlivesDepartedMembers(t *testing.T) {
	store := newTestStore(t)
	svc := NewRSVPService(store)
	ctx := context.Background()

	_, smiths := seedFamily(t, store, "Smith Family",
		[2]string{"Alice", "Smith"}, [2]string{"Bob", "Smith"})
	alice, bob := smiths[0], smiths[1]

	_, err := svc.Submit(ctx, alice.ID, true, "", "")
	require.NoError(t, err)

	// Bob never owned the row, so removing him leaves it alone.
	_, err = store.DeleteGuest(ctx, bob.ID)
	require.NoError(t, err)
	detail, err := svc.FindByFamily(ctx, alice.FamilyID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, detail.GuestID)

	// Removing the owning member takes the family's answer with it.
	_, err = store.DeleteGuest(ctx, alice.ID)
	require.NoError(t, err)
	_, err = svc.FindByFamily(ctx, alice.FamilyID)
	assert.ErrorIs(t, err, ErrRSVPNotFound)
}

func TestRSVPService_Submit_GuestNotFound(t *testing.T) {
	store := newTestStore(t)
	svc := NewRSVPService(store)

	_, err := svc.Submit(context.Background(), 99, true, "", "")
	assert.ErrorIs(t, err, ErrRSVPGuestNotFound)
}

func TestRSVPService_SubmitIndividual_OneRowPerGuest(t *testing.T) {
	store := newTestStore(t)
	svc := NewRSVPService(store)
	ctx := context.Background()

	_, smiths := seedFamily(t, store, "Smith Family",
		[2]string{"Alice", "Smith"}, [2]string{"Bob", "Smith"})
	alice, bob := smiths[0], smiths[1]

	aliceRow, err := svc.SubmitIndividual(ctx, alice.ID, true, "vegetarian", "")
	require.NoError(t, err)
	bobRow, err := svc.SubmitIndividual(ctx, bob.ID, false, "", "")
	require.NoError(t, err)
	assert.NotEqual(t, aliceRow.ID, bobRow.ID, "individual submissions never consolidate")

	// A repeat submission from the same guest updates that guest's own row.
	again, err := svc.SubmitIndividual(ctx, alice.ID, false, "vegan", "")
	require.NoError(t, err)
	assert.Equal(t, aliceRow.ID, again.ID)
	assert.Equal(t, "vegan", again.DietaryRestrictions)

	rsvps, err := store.ListRSVPs(ctx)
	require.NoError(t, err)
	assert.Len(t, rsvps, 2)
}

func TestRSVPService_FindByGuest_NotFound(t *testing.T) {
	store := newTestStore(t)
	svc := NewRSVPService(store)
	ctx := context.Background()

	_, smiths := seedFamily(t, store, "Smith Family",
		[2]string{"Alice", "Smith"}, [2]string{"Bob", "Smith"})
	alice, bob := smiths[0], smiths[1]

	_, err := svc.Submit(ctx, alice.ID, true, "", "")
	require.NoError(t, err)

	// The family row is keyed to Alice, so a per-guest lookup for Bob misses
	// even though his family has answered.
	found, err := svc.FindByGuest(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.GuestID)

	_, err = svc.FindByGuest(ctx, bob.ID)
	assert.ErrorIs(t, err, ErrRSVPNotFound)
}
