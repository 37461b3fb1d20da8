package repositories

import (
	"context"
	"errors"

	"rsvp.link/models"
)

// ErrNotFound is returned by single-record lookups and mutations when the
// target row does not exist. Bulk reads never return it: an unreadable medium
// degrades to an empty result by contract.
var ErrNotFound = errors.New("record not found")

// IStore is the backend store contract. Two implementations exist, the
// flat-file CSVStore and the relational GormStore; the access layer is wired
// to exactly one of them at process start and their observable behavior must
// match.
//
// List operations return records in ascending id order and fail open: a
// missing or unreadable medium yields an empty slice, never an error.
// Mutations propagate failures.
type IStore interface {
	ListFamilies(ctx context.Context) ([]models.Family, error)
	GetFamily(ctx context.Context, id uint) (*models.Family, error)
	InsertFamily(ctx context.Context, familyName string) (*models.Family, error)
	// DeleteFamily cascades to the family's guests and their RSVPs and
	// returns the removed family together with its member count.
	DeleteFamily(ctx context.Context, id uint) (*models.Family, int, error)

	ListGuests(ctx context.Context) ([]models.Guest, error)
	GetGuest(ctx context.Context, id uint) (*models.Guest, error)
	ListGuestsByFamily(ctx context.Context, familyID uint) ([]models.Guest, error)
	FindGuestByName(ctx context.Context, firstName, lastName string) (*models.GuestDetail, error)
	InsertGuest(ctx context.Context, familyID uint, firstName, lastName string, isAdmin bool) (*models.Guest, error)
	UpdateGuestName(ctx context.Context, id uint, firstName, lastName string) (*models.Guest, error)
	// DeleteGuest cascades to RSVP rows carrying the guest's id and returns
	// the removed guest.
	DeleteGuest(ctx context.Context, id uint) (*models.Guest, error)

	ListRSVPs(ctx context.Context) ([]models.RSVP, error)
	FindRSVPByGuest(ctx context.Context, guestID uint) (*models.RSVP, error)
	// FindRSVPByFamily resolves the family's shared RSVP row through its
	// guest-id set, joined with the submitting guest's name and family name.
	FindRSVPByFamily(ctx context.Context, familyID uint) (*models.RSVPDetail, error)
	ListRSVPsByFamily(ctx context.Context, familyID uint) ([]models.RSVPDetail, error)
	InsertRSVP(ctx context.Context, rsvp *models.RSVP) (*models.RSVP, error)
	UpdateRSVP(ctx context.Context, id uint, willAttend bool, dietaryRestrictions, individualNotes string) (*models.RSVP, error)
}
