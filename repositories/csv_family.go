package repositories

import (
	"context"
	"time"

	"rsvp.link/models"
)

func (s *CSVStore) loadFamilies() []models.Family {
	rows, idx := readRecords(s.familiesPath())
	families := make([]models.Family, 0, len(rows))
	for _, row := range rows {
		families = append(families, decodeFamily(row, idx))
	}
	return families
}

func (s *CSVStore) writeFamilies(families []models.Family) error {
	rows := make([][]string, 0, len(families))
	for _, f := range families {
		rows = append(rows, encodeFamily(f))
	}
	return writeRecords(s.familiesPath(), familyColumns, rows)
}

func (s *CSVStore) ListFamilies(ctx context.Context) ([]models.Family, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadFamilies(), nil
}

func (s *CSVStore) GetFamily(ctx context.Context, id uint) (*models.Family, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.loadFamilies() {
		if f.ID == id {
			return &f, nil
		}
	}
	return nil, ErrNotFound
}

func (s *CSVStore) InsertFamily(ctx context.Context, familyName string) (*models.Family, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	families := s.loadFamilies()
	ids := make([]uint, 0, len(families))
	for _, f := range families {
		ids = append(ids, f.ID)
	}

	family := models.Family{
		ID:         nextID(ids),
		FamilyName: familyName,
		CreatedAt:  time.Now(),
	}
	families = append(families, family)
	if err := s.writeFamilies(families); err != nil {
		return nil, err
	}
	return &family, nil
}

// DeleteFamily removes the family's guests, then any RSVP rows held by those
// guests, then the family itself. The target is checked before the first
// write so a miss leaves every file untouched.
func (s *CSVStore) DeleteFamily(ctx context.Context, id uint) (*models.Family, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	families := s.loadFamilies()
	var removed *models.Family
	for i := range families {
		if families[i].ID == id {
			removed = &families[i]
			break
		}
	}
	if removed == nil {
		return nil, 0, ErrNotFound
	}

	guests := s.loadGuests()
	memberIDs := make(map[uint]bool)
	kept := make([]models.Guest, 0, len(guests))
	for _, g := range guests {
		if g.FamilyID == id {
			memberIDs[g.ID] = true
		} else {
			kept = append(kept, g)
		}
	}
	if err := s.writeGuests(kept); err != nil {
		return nil, 0, err
	}

	rsvps := s.loadRSVPs()
	keptRSVPs := make([]models.RSVP, 0, len(rsvps))
	for _, r := range rsvps {
		if !memberIDs[r.GuestID] {
			keptRSVPs = append(keptRSVPs, r)
		}
	}
	if err := s.writeRSVPs(keptRSVPs); err != nil {
		return nil, 0, err
	}

	keptFamilies := make([]models.Family, 0, len(families))
	for _, f := range families {
		if f.ID != id {
			keptFamilies = append(keptFamilies, f)
		}
	}
	if err := s.writeFamilies(keptFamilies); err != nil {
		return nil, 0, err
	}

	return removed, len(memberIDs), nil
}
