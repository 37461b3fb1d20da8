package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"rsvp.link/configs/configslog"
	"rsvp.link/models"
	"rsvp.link/repositories"
)

// FamilyServiceError is a typed service error.
type FamilyServiceError string

func (e FamilyServiceError) Error() string { return string(e) }

const (
	ErrFamilyNotFound        FamilyServiceError = "family not found"
	ErrFamilyNameRequired    FamilyServiceError = "family name is required"
	ErrFamilyNameTaken       FamilyServiceError = "family name already exists"
	ErrFamilyMembersRequired FamilyServiceError = "at least one family member is required"
)

// NewMember is the input shape for creating a guest as part of a family.
type NewMember struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// IFamilyService covers family operations of the entity access layer.
type IFamilyService interface {
	List(ctx context.Context) ([]models.Family, error)
	Add(ctx context.Context, familyName string) (*models.Family, error)
	// AddWithMembers creates the family and its initial guests in one
	// operation. A member that fails to insert is skipped, not fatal; the
	// successfully added guests are returned.
	AddWithMembers(ctx context.Context, familyName string, members []NewMember) (*models.Family, []models.Guest, error)
	// Remove deletes the family with cascade and reports the removed family
	// and its member count.
	Remove(ctx context.Context, id uint) (*models.Family, int, error)
}

type FamilyService struct {
	store repositories.IStore
}

func NewFamilyService(store repositories.IStore) IFamilyService {
	return &FamilyService{store: store}
}

func (s *FamilyService) List(ctx context.Context) ([]models.Family, error) {
	return s.store.ListFamilies(ctx)
}

func (s *FamilyService) Add(ctx context.Context, familyName string) (*models.Family, error) {
	familyName = strings.TrimSpace(familyName)
	if familyName == "" {
		return nil, ErrFamilyNameRequired
	}
	return s.store.InsertFamily(ctx, familyName)
}

func (s *FamilyService) AddWithMembers(ctx context.Context, familyName string, members []NewMember) (*models.Family, []models.Guest, error) {
	familyName = strings.TrimSpace(familyName)
	if familyName == "" {
		return nil, nil, ErrFamilyNameRequired
	}
	if len(members) == 0 {
		return nil, nil, ErrFamilyMembersRequired
	}

	existing, err := s.store.ListFamilies(ctx)
	if err != nil {
		return nil, nil, err
	}
	for _, f := range existing {
		if strings.EqualFold(f.FamilyName, familyName) {
			return nil, nil, ErrFamilyNameTaken
		}
	}

	family, err := s.store.InsertFamily(ctx, familyName)
	if err != nil {
		return nil, nil, err
	}

	added := make([]models.Guest, 0, len(members))
	for _, m := range members {
		guest, err := s.store.InsertGuest(ctx, family.ID, m.FirstName, m.LastName, false)
		if err != nil {
			configslog.Log.Error("FamilyService.AddWithMembers: member insert failed, continuing",
				zap.String("firstName", m.FirstName), zap.String("lastName", m.LastName), zap.Error(err))
			continue
		}
		added = append(added, *guest)
	}
	return family, added, nil
}

func (s *FamilyService) Remove(ctx context.Context, id uint) (*models.Family, int, error) {
	family, memberCount, err := s.store.DeleteFamily(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, 0, ErrFamilyNotFound
		}
		return nil, 0, err
	}
	return family, memberCount, nil
}

var _ IFamilyService = (*FamilyService)(nil)
