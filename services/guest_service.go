package services

import (
	"context"
	"errors"
	"strings"

	"rsvp.link/models"
	"rsvp.link/repositories"
)

// GuestServiceError is a typed service error.
type GuestServiceError string

func (e GuestServiceError) Error() string { return string(e) }

const (
	ErrGuestNotFound     GuestServiceError = "guest not found"
	ErrGuestNameRequired GuestServiceError = "first name and last name are required"
)

// IGuestService covers guest operations of the entity access layer.
type IGuestService interface {
	List(ctx context.Context) ([]models.Guest, error)
	Get(ctx context.Context, id uint) (*models.Guest, error)
	ListByFamily(ctx context.Context, familyID uint) ([]models.Guest, error)
	// FindByName is a case-insensitive lookup joined with the family name;
	// it backs name-based login.
	FindByName(ctx context.Context, firstName, lastName string) (*models.GuestDetail, error)
	Add(ctx context.Context, familyID uint, firstName, lastName string, isAdmin bool) (*models.Guest, error)
	UpdateName(ctx context.Context, id uint, firstName, lastName string) (*models.Guest, error)
	Remove(ctx context.Context, id uint) (*models.Guest, error)
}

type GuestService struct {
	store repositories.IStore
}

func NewGuestService(store repositories.IStore) IGuestService {
	return &GuestService{store: store}
}

func (s *GuestService) List(ctx context.Context) ([]models.Guest, error) {
	return s.store.ListGuests(ctx)
}

func (s *GuestService) Get(ctx context.Context, id uint) (*models.Guest, error) {
	guest, err := s.store.GetGuest(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return guest, nil
}

func (s *GuestService) ListByFamily(ctx context.Context, familyID uint) ([]models.Guest, error) {
	return s.store.ListGuestsByFamily(ctx, familyID)
}

func (s *GuestService) FindByName(ctx context.Context, firstName, lastName string) (*models.GuestDetail, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, ErrGuestNameRequired
	}
	detail, err := s.store.FindGuestByName(ctx, firstName, lastName)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return detail, nil
}

func (s *GuestService) Add(ctx context.Context, familyID uint, firstName, lastName string, isAdmin bool) (*models.Guest, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, ErrGuestNameRequired
	}
	return s.store.InsertGuest(ctx, familyID, firstName, lastName, isAdmin)
}

func (s *GuestService) UpdateName(ctx context.Context, id uint, firstName, lastName string) (*models.Guest, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, ErrGuestNameRequired
	}
	guest, err := s.store.UpdateGuestName(ctx, id, firstName, lastName)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return guest, nil
}

func (s *GuestService) Remove(ctx context.Context, id uint) (*models.Guest, error) {
	guest, err := s.store.DeleteGuest(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return guest, nil
}

var _ IGuestService = (*GuestService)(nil)
