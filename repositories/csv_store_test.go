package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsvp.link/configs/configslog"
	"rsvp.link/models"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	os.Exit(m.Run())
}

func newTestStore(t *testing.T) *CSVStore {
	t.Helper()
	store, err := NewCSVStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestCSVStore_InsertFamily_AssignsSequentialIDs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.InsertFamily(ctx, "Smith Family")
	require.NoError(t, err)
	second, err := store.InsertFamily(ctx, "Jones Family")
	require.NoError(t, err)

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestCSVStore_InsertFamily_ReusesGapAfterDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.InsertFamily(ctx, "Smith Family")
	require.NoError(t, err)
	second, err := store.InsertFamily(ctx, "Jones Family")
	require.NoError(t, err)

	// Removing the record with the highest id frees that id for reuse:
	// assignment is max+1 over the surviving records, not a counter.
	_, _, err = store.DeleteFamily(ctx, second.ID)
	require.NoError(t, err)

	third, err := store.InsertFamily(ctx, "Brown Family")
	require.NoError(t, err)
	assert.Equal(t, uint(2), third.ID)
}

func TestCSVStore_GetFamily_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetFamily(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCSVStore_DeleteFamily_CascadesToGuestsAndRSVPs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	smith, err := store.InsertFamily(ctx, "Smith Family")
	require.NoError(t, err)
	jones, err := store.InsertFamily(ctx, "Jones Family")
	require.NoError(t, err)

	alice, err := store.InsertGuest(ctx, smith.ID, "Alice", "Smith", false)
	require.NoError(t, err)
	_, err = store.InsertGuest(ctx, smith.ID, "Bob", "Smith", false)
	require.NoError(t, err)
	carol, err := store.InsertGuest(ctx, jones.ID, "Carol", "Jones", false)
	require.NoError(t, err)

	_, err = store.InsertRSVP(ctx, &models.RSVP{GuestID: alice.ID, WillAttend: true})
	require.NoError(t, err)
	_, err = store.InsertRSVP(ctx, &models.RSVP{GuestID: carol.ID, WillAttend: false})
	require.NoError(t, err)

	removed, memberCount, err := store.DeleteFamily(ctx, smith.ID)
	require.NoError(t, err)
	assert.Equal(t, "Smith Family", removed.FamilyName)
	assert.Equal(t, 2, memberCount)

	guests, err := store.ListGuests(ctx)
	require.NoError(t, err)
	require.Len(t, guests, 1)
	assert.Equal(t, carol.ID, guests[0].ID)

	rsvps, err := store.ListRSVPs(ctx)
	require.NoError(t, err)
	require.Len(t, rsvps, 1)
	assert.Equal(t, carol.ID, rsvps[0].GuestID)
}

func TestCSVStore_DeleteFamily_NotFoundLeavesDataIntact(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	family, err := store.InsertFamily(ctx, "Smith Family")
	require.NoError(t, err)
	_, err = store.InsertGuest(ctx, family.ID, "Alice", "Smith", false)
	require.NoError(t, err)

	_, _, err = store.DeleteFamily(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	guests, err := store.ListGuests(ctx)
	require.NoError(t, err)
	assert.Len(t, guests, 1)
}

func TestCSVStore_DeleteGuest_RemovesOwnRSVPRowsOnly(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	family, err := store.InsertFamily(ctx, "Smith Family")
	require.NoError(t, err)
	alice, err := store.InsertGuest(ctx, family.ID, "Alice", "Smith", false)
	require.NoError(t, err)
	bob, err := store.InsertGuest(ctx, family.ID, "Bob", "Smith", false)
	require.NoError(t, err)

	// The shared family row carries Alice's guest id.
	_, err = store.InsertRSVP(ctx, &models.RSVP{GuestID: alice.ID, WillAttend: true})
	require.NoError(t, err)

	_, err = store.DeleteGuest(ctx, bob.ID)
	require.NoError(t, err)

	rsvps, err := store.ListRSVPs(ctx)
	require.NoError(t, err)
	assert.Len(t, rsvps, 1, "removing a member must not remove the family row keyed to another member")

	_, err = store.DeleteGuest(ctx, alice.ID)
	require.NoError(t, err)

	rsvps, err = store.ListRSVPs(ctx)
	require.NoError(t, err)
	assert.Empty(t, rsvps, "removing the row's keyed guest removes the row")
}

func TestCSVStore_FindGuestByName_CaseInsensitive(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	family, err := store.InsertFamily(ctx, "Smith Family")
	require.NoError(t, err)
	_, err = store.InsertGuest(ctx, family.ID, "Alice", "Smith", false)
	require.NoError(t, err)

	detail, err := store.FindGuestByName(ctx, "ALICE", "smith")
	require.NoError(t, err)
	assert.Equal(t, "Alice", detail.FirstName)
	assert.Equal(t, "Smith Family", detail.FamilyName)

	_, err = store.FindGuestByName(ctx, "Nobody", "Here")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCSVStore_UpdateGuestName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	family, err := store.InsertFamily(ctx, "Smith Family")
	require.NoError(t, err)
	guest, err := store.InsertGuest(ctx, family.ID, "Alice", "Smith", false)
	require.NoError(t, err)

	updated, err := store.UpdateGuestName(ctx, guest.ID, "Alicia", "Smythe")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.FirstName)
	assert.Equal(t, "Smythe", updated.LastName)
	assert.Equal(t, family.ID, updated.FamilyID)

	_, err = store.UpdateGuestName(ctx, 99, "X", "Y")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCSVStore_FindRSVPByFamily_ResolvesThroughAnyMember(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	family, err := store.InsertFamily(ctx, "Smith Family")
	require.NoError(t, err)
	alice, err := store.InsertGuest(ctx, family.ID, "Alice", "Smith", false)
	require.NoError(t, err)
	_, err = store.InsertGuest(ctx, family.ID, "Bob", "Smith", false)
	require.NoError(t, err)

	_, err = store.FindRSVPByFamily(ctx, family.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.InsertRSVP(ctx, &models.RSVP{GuestID: alice.ID, WillAttend: true, DietaryRestrictions: "vegetarian"})
	require.NoError(t, err)

	detail, err := store.FindRSVPByFamily(ctx, family.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, detail.GuestID)
	assert.Equal(t, "Alice", detail.FirstName)
	assert.Equal(t, "Smith Family", detail.FamilyName)
	assert.Equal(t, "vegetarian", detail.DietaryRestrictions)
}

func TestCSVStore_UpdateRSVP_KeepsGuestID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	family, err := store.InsertFamily(ctx, "Smith Family")
	require.NoError(t, err)
	alice, err := store.InsertGuest(ctx, family.ID, "Alice", "Smith", false)
	require.NoError(t, err)
	created, err := store.InsertRSVP(ctx, &models.RSVP{GuestID: alice.ID, WillAttend: true, DietaryRestrictions: "vegetarian"})
	require.NoError(t, err)

	updated, err := store.UpdateRSVP(ctx, created.ID, false, "", "running late")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, updated.GuestID)
	assert.False(t, updated.WillAttend)
	assert.Empty(t, updated.DietaryRestrictions, "an omitted field overwrites, it does not merge")
	assert.Equal(t, "running late", updated.IndividualNotes)
	assert.False(t, updated.CreatedAt.IsZero())
}

func TestCSVStore_Reads_FailOpenOnMissingFiles(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	families, err := store.ListFamilies(ctx)
	require.NoError(t, err)
	assert.Empty(t, families)

	guests, err := store.ListGuests(ctx)
	require.NoError(t, err)
	assert.Empty(t, guests)

	rsvps, err := store.ListRSVPs(ctx)
	require.NoError(t, err)
	assert.Empty(t, rsvps)
}

func TestCSVStore_Read_MalformedRowsDegradeGracefully(t *testing.T) {
	dir := t.TempDir()
	content := "id,family_id,first_name,last_name,is_admin,created_at\n" +
		"1,1,Alice,Smith,false,2025-06-01 12:00:00\n" +
		"oops,1,Bob,Smith,TRUE,not-a-date\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "guests.csv"), []byte(content), 0o644))

	store, err := NewCSVStore(dir)
	require.NoError(t, err)

	guests, err := store.ListGuests(context.Background())
	require.NoError(t, err)
	require.Len(t, guests, 2)

	assert.Equal(t, uint(1), guests[0].ID)
	assert.False(t, guests[0].CreatedAt.IsZero())

	// Malformed fields coerce to sentinels instead of failing the read:
	// bad id becomes 0, "TRUE" is not the literal "true", bad timestamps
	// become the zero time.
	assert.Equal(t, uint(0), guests[1].ID)
	assert.False(t, guests[1].IsAdmin)
	assert.True(t, guests[1].CreatedAt.IsZero())
}

func TestCSVStore_Read_ReorderedHeaderStillDecodes(t *testing.T) {
	dir := t.TempDir()
	content := "family_name,created_at,id\n" +
		"Smith Family,2025-06-01 12:00:00,7\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "families.csv"), []byte(content), 0o644))

	store, err := NewCSVStore(dir)
	require.NoError(t, err)

	families, err := store.ListFamilies(context.Background())
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, uint(7), families[0].ID)
	assert.Equal(t, "Smith Family", families[0].FamilyName)
}

func TestCSVStore_Write_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewCSVStore(dir)
	require.NoError(t, err)
	family, err := first.InsertFamily(ctx, "Smith Family")
	require.NoError(t, err)
	_, err = first.InsertGuest(ctx, family.ID, "Alice", "Smith", true)
	require.NoError(t, err)

	second, err := NewCSVStore(dir)
	require.NoError(t, err)
	guests, err := second.ListGuests(ctx)
	require.NoError(t, err)
	require.Len(t, guests, 1)
	assert.Equal(t, "Alice", guests[0].FirstName)
	assert.True(t, guests[0].IsAdmin)
}
