package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsvp.link/models"
)

func TestReportService_Stats_PendingAndAttendance(t *testing.T) {
	store := newTestStore(t)
	rsvpSvc := NewRSVPService(store)
	reportSvc := NewReportService(store)
	ctx := context.Background()

	_, smiths := seedFamily(t, store, "Smith Family",
		[2]string{"Alice", "Smith"}, [2]string{"Bob", "Smith"})
	_, joneses := seedFamily(t, store, "Jones Family", [2]string{"Carol", "Jones"})
	seedFamily(t, store, "Brown Family", [2]string{"Dave", "Brown"})

	// Alice answers for the Smiths, Carol declines for the Joneses, the
	// Browns never respond.
	_, err := rsvpSvc.Submit(ctx, smiths[0].ID, true, "", "")
	require.NoError(t, err)
	_, err = rsvpSvc.Submit(ctx, joneses[0].ID, false, "", "")
	require.NoError(t, err)

	stats, err := reportSvc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalGuests)
	assert.Equal(t, 3, stats.TotalFamilies)
	assert.Equal(t, 1, stats.Attending)
	assert.Equal(t, 1, stats.NotAttending)
	// Responses resolve by a guest's own id: Bob is pending even though his
	// family answered, because the shared row is keyed to Alice.
	assert.Equal(t, 2, stats.TotalResponses)
	assert.Equal(t, 2, stats.Pending)

	require.Len(t, stats.FamilyStats, 3)
	byName := make(map[string]models.FamilyStats, len(stats.FamilyStats))
	for _, fs := range stats.FamilyStats {
		byName[fs.FamilyName] = fs
	}
	smith := byName["Smith Family"]
	assert.Equal(t, 2, smith.TotalMembers)
	assert.Equal(t, 1, smith.Attending)
	assert.Equal(t, 1, smith.Pending)
	assert.Equal(t, 0, smith.NotAttending)

	brown := byName["Brown Family"]
	assert.Equal(t, 1, brown.Pending)
	assert.Equal(t, 0, brown.Attending)
}

func TestReportService_ExcludesAdmins(t *testing.T) {
	store := newTestStore(t)
	reportSvc := NewReportService(store)
	ctx := context.Background()

	adminFamily, err := store.InsertFamily(ctx, models.AdminFamilyName)
	require.NoError(t, err)
	_, err = store.InsertGuest(ctx, adminFamily.ID, "Host", "Admin", true)
	require.NoError(t, err)

	seedFamily(t, store, "Smith Family", [2]string{"Alice", "Smith"})

	stats, err := reportSvc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalGuests)
	assert.Equal(t, 1, stats.TotalFamilies)
	assert.Equal(t, 1, stats.Pending)

	groups, err := reportSvc.FamilyRoster(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Smith Family", groups[0].FamilyName)

	entries, err := reportSvc.FlatRoster(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Alice", entries[0].Guest.FirstName)
}

func TestReportService_FamilyRoster_MemberRSVPByOwnID(t *testing.T) {
	store := newTestStore(t)
	rsvpSvc := NewRSVPService(store)
	reportSvc := NewReportService(store)
	ctx := context.Background()

	_, smiths := seedFamily(t, store, "Smith Family",
		[2]string{"Alice", "Smith"}, [2]string{"Bob", "Smith"})

	_, err := rsvpSvc.Submit(ctx, smiths[0].ID, true, "vegetarian", "")
	require.NoError(t, err)

	groups, err := reportSvc.FamilyRoster(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Members, 2)

	alice, bob := groups[0].Members[0], groups[0].Members[1]
	require.NotNil(t, alice.RSVP)
	assert.True(t, alice.RSVP.WillAttend)
	assert.Equal(t, "vegetarian", alice.RSVP.DietaryRestrictions)
	assert.Nil(t, bob.RSVP, "the shared row attaches to the keyed member only")
}

func TestReportService_FamilyRoster_EmptyFamilyHasEmptyMembers(t *testing.T) {
	store := newTestStore(t)
	reportSvc := NewReportService(store)
	ctx := context.Background()

	_, err := store.InsertFamily(ctx, "Smith Family")
	require.NoError(t, err)

	groups, err := reportSvc.FamilyRoster(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.NotNil(t, groups[0].Members)
	assert.Empty(t, groups[0].Members)
}

func TestReportService_FlatRoster_UnknownFamilyFallback(t *testing.T) {
	store := newTestStore(t)
	reportSvc := NewReportService(store)
	ctx := context.Background()

	// A guest whose family row is gone still appears, flagged Unknown.
	_, err := store.InsertGuest(ctx, 42, "Orphan", "Guest", false)
	require.NoError(t, err)

	entries, err := reportSvc.FlatRoster(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Unknown", entries[0].Guest.FamilyName)
	assert.Nil(t, entries[0].RSVP)
}
