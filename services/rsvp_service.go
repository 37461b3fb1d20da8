package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"rsvp.link/configs/configslog"
	"rsvp.link/models"
	"rsvp.link/repositories"
)

// RSVPServiceError is a typed service error.
type RSVPServiceError string

func (e RSVPServiceError) Error() string { return string(e) }

const (
	ErrRSVPGuestNotFound RSVPServiceError = "guest not found"
	ErrRSVPNotFound      RSVPServiceError = "rsvp not found"
)

// IRSVPService covers RSVP operations of the entity access layer, including
// the consolidation engine. Submit and SubmitIndividual are distinct
// operations with different keying rules and are never merged.
type IRSVPService interface {
	List(ctx context.Context) ([]models.RSVP, error)
	FindByGuest(ctx context.Context, guestID uint) (*models.RSVP, error)
	FindByFamily(ctx context.Context, familyID uint) (*models.RSVPDetail, error)
	ListByFamily(ctx context.Context, familyID uint) ([]models.RSVPDetail, error)
	// Submit applies family consolidation: the submission lands in the
	// family's existing RSVP row if any member has one, otherwise a new row
	// is created for the submitting guest.
	Submit(ctx context.Context, guestID uint, willAttend bool, dietaryRestrictions, individualNotes string) (*models.RSVP, error)
	// SubmitIndividual keys strictly by guest id with no family
	// consolidation.
	SubmitIndividual(ctx context.Context, guestID uint, willAttend bool, dietaryRestrictions, individualNotes string) (*models.RSVP, error)
}

type RSVPService struct {
	store repositories.IStore
}

func NewRSVPService(store repositories.IStore) IRSVPService {
	return &RSVPService{store: store}
}

func (s *RSVPService) List(ctx context.Context) ([]models.RSVP, error) {
	return s.store.ListRSVPs(ctx)
}

func (s *RSVPService) FindByGuest(ctx context.Context, guestID uint) (*models.RSVP, error) {
	rsvp, err := s.store.FindRSVPByGuest(ctx, guestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRSVPNotFound
		}
		return nil, err
	}
	return rsvp, nil
}

func (s *RSVPService) FindByFamily(ctx context.Context, familyID uint) (*models.RSVPDetail, error) {
	detail, err := s.store.FindRSVPByFamily(ctx, familyID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRSVPNotFound
		}
		return nil, err
	}
	return detail, nil
}

func (s *RSVPService) ListByFamily(ctx context.Context, familyID uint) ([]models.RSVPDetail, error) {
	return s.store.ListRSVPsByFamily(ctx, familyID)
}

// Submit is the consolidation engine. The find-then-write sequence is not a
// transaction: two near-simultaneous submissions for one family can race and
// the later write wins. The CSV backend serializes per operation, which
// narrows but does not remove the window between the two store calls.
func (s *RSVPService) Submit(ctx context.Context, guestID uint, willAttend bool, dietaryRestrictions, individualNotes string) (*models.RSVP, error) {
	guest, err := s.store.GetGuest(ctx, guestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRSVPGuestNotFound
		}
		return nil, err
	}

	existing, err := s.store.FindRSVPByFamily(ctx, guest.FamilyID)
	switch {
	case err == nil:
		// The family already answered: overwrite the shared row in place.
		// The row's guest id stays on the original submitter.
		updated, err := s.store.UpdateRSVP(ctx, existing.ID, willAttend, dietaryRestrictions, individualNotes)
		if err != nil {
			return nil, err
		}
		configslog.Log.Info("updated existing family RSVP",
			zap.Uint("familyID", guest.FamilyID), zap.Uint("submittedBy", guestID), zap.Uint("rsvpID", updated.ID))
		return updated, nil
	case errors.Is(err, repositories.ErrNotFound):
		created, err := s.store.InsertRSVP(ctx, &models.RSVP{
			GuestID:             guestID,
			WillAttend:          willAttend,
			DietaryRestrictions: dietaryRestrictions,
			IndividualNotes:     individualNotes,
		})
		if err != nil {
			return nil, err
		}
		configslog.Log.Info("created new family RSVP",
			zap.Uint("familyID", guest.FamilyID), zap.Uint("guestID", guestID), zap.Uint("rsvpID", created.ID))
		return created, nil
	default:
		return nil, err
	}
}

func (s *RSVPService) SubmitIndividual(ctx context.Context, guestID uint, willAttend bool, dietaryRestrictions, individualNotes string) (*models.RSVP, error) {
	if _, err := s.store.GetGuest(ctx, guestID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRSVPGuestNotFound
		}
		return nil, err
	}

	existing, err := s.store.FindRSVPByGuest(ctx, guestID)
	switch {
	case err == nil:
		return s.store.UpdateRSVP(ctx, existing.ID, willAttend, dietaryRestrictions, individualNotes)
	case errors.Is(err, repositories.ErrNotFound):
		return s.store.InsertRSVP(ctx, &models.RSVP{
			GuestID:             guestID,
			WillAttend:          willAttend,
			DietaryRestrictions: dietaryRestrictions,
			IndividualNotes:     individualNotes,
		})
	default:
		return nil, err
	}
}

var _ IRSVPService = (*RSVPService)(nil)
