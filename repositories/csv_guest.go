package repositories

import (
	"context"
	"strings"
	"time"

	"rsvp.link/models"
)

func (s *CSVStore) loadGuests() []models.Guest {
	rows, idx := readRecords(s.guestsPath())
	guests := make([]models.Guest, 0, len(rows))
	for _, row := range rows {
		guests = append(guests, decodeGuest(row, idx))
	}
	return guests
}

func (s *CSVStore) writeGuests(guests []models.Guest) error {
	rows := make([][]string, 0, len(guests))
	for _, g := range guests {
		rows = append(rows, encodeGuest(g))
	}
	return writeRecords(s.guestsPath(), guestColumns, rows)
}

func (s *CSVStore) ListGuests(ctx context.Context) ([]models.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadGuests(), nil
}

func (s *CSVStore) GetGuest(ctx context.Context, id uint) (*models.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.loadGuests() {
		if g.ID == id {
			return &g, nil
		}
	}
	return nil, ErrNotFound
}

func (s *CSVStore) ListGuestsByFamily(ctx context.Context, familyID uint) ([]models.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var members []models.Guest
	for _, g := range s.loadGuests() {
		if g.FamilyID == familyID {
			members = append(members, g)
		}
	}
	return members, nil
}

func (s *CSVStore) FindGuestByName(ctx context.Context, firstName, lastName string) (*models.GuestDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.loadGuests() {
		if strings.EqualFold(g.FirstName, firstName) && strings.EqualFold(g.LastName, lastName) {
			detail := models.GuestDetail{
				ID:         g.ID,
				FamilyID:   g.FamilyID,
				FirstName:  g.FirstName,
				LastName:   g.LastName,
				IsAdmin:    g.IsAdmin,
				CreatedAt:  g.CreatedAt,
				FamilyName: "Unknown",
			}
			for _, f := range s.loadFamilies() {
				if f.ID == g.FamilyID {
					detail.FamilyName = f.FamilyName
					break
				}
			}
			return &detail, nil
		}
	}
	return nil, ErrNotFound
}

func (s *CSVStore) InsertGuest(ctx context.Context, familyID uint, firstName, lastName string, isAdmin bool) (*models.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	guests := s.loadGuests()
	ids := make([]uint, 0, len(guests))
	for _, g := range guests {
		ids = append(ids, g.ID)
	}

	guest := models.Guest{
		ID:        nextID(ids),
		FamilyID:  familyID,
		FirstName: firstName,
		LastName:  lastName,
		IsAdmin:   isAdmin,
		CreatedAt: time.Now(),
	}
	guests = append(guests, guest)
	if err := s.writeGuests(guests); err != nil {
		return nil, err
	}
	return &guest, nil
}

func (s *CSVStore) UpdateGuestName(ctx context.Context, id uint, firstName, lastName string) (*models.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	guests := s.loadGuests()
	for i := range guests {
		if guests[i].ID == id {
			guests[i].FirstName = firstName
			guests[i].LastName = lastName
			if err := s.writeGuests(guests); err != nil {
				return nil, err
			}
			return &guests[i], nil
		}
	}
	return nil, ErrNotFound
}

// DeleteGuest removes the guest and any RSVP rows carrying the guest's id.
// A shared family RSVP created by a different member survives, matching the
// consolidation model's ownership rule.
func (s *CSVStore) DeleteGuest(ctx context.Context, id uint) (*models.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	guests := s.loadGuests()
	var removed *models.Guest
	kept := make([]models.Guest, 0, len(guests))
	for i := range guests {
		if guests[i].ID == id {
			removed = &guests[i]
		} else {
			kept = append(kept, guests[i])
		}
	}
	if removed == nil {
		return nil, ErrNotFound
	}
	if err := s.writeGuests(kept); err != nil {
		return nil, err
	}

	rsvps := s.loadRSVPs()
	keptRSVPs := make([]models.RSVP, 0, len(rsvps))
	for _, r := range rsvps {
		if r.GuestID != id {
			keptRSVPs = append(keptRSVPs, r)
		}
	}
	if err := s.writeRSVPs(keptRSVPs); err != nil {
		return nil, err
	}

	return removed, nil
}
