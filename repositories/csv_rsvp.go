package repositories

import (
	"context"
	"time"

	"rsvp.link/models"
)

func (s *CSVStore) loadRSVPs() []models.RSVP {
	rows, idx := readRecords(s.rsvpsPath())
	rsvps := make([]models.RSVP, 0, len(rows))
	for _, row := range rows {
		rsvps = append(rsvps, decodeRSVP(row, idx))
	}
	return rsvps
}

func (s *CSVStore) writeRSVPs(rsvps []models.RSVP) error {
	rows := make([][]string, 0, len(rsvps))
	for _, r := range rsvps {
		rows = append(rows, encodeRSVP(r))
	}
	return writeRecords(s.rsvpsPath(), rsvpColumns, rows)
}

func (s *CSVStore) ListRSVPs(ctx context.Context) ([]models.RSVP, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadRSVPs(), nil
}

func (s *CSVStore) FindRSVPByGuest(ctx context.Context, guestID uint) (*models.RSVP, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.loadRSVPs() {
		if r.GuestID == guestID {
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

// familyRSVPDetail joins an RSVP row with the owning guest's name and the
// family name. Callers hold s.mu.
func (s *CSVStore) familyRSVPDetail(r models.RSVP, members []models.Guest, familyID uint) models.RSVPDetail {
	detail := models.RSVPDetail{
		ID:                  r.ID,
		GuestID:             r.GuestID,
		WillAttend:          r.WillAttend,
		DietaryRestrictions: r.DietaryRestrictions,
		IndividualNotes:     r.IndividualNotes,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
	for _, g := range members {
		if g.ID == r.GuestID {
			detail.FirstName = g.FirstName
			detail.LastName = g.LastName
			break
		}
	}
	for _, f := range s.loadFamilies() {
		if f.ID == familyID {
			detail.FamilyName = f.FamilyName
			break
		}
	}
	return detail
}

func (s *CSVStore) familyMembers(familyID uint) ([]models.Guest, map[uint]bool) {
	var members []models.Guest
	memberIDs := make(map[uint]bool)
	for _, g := range s.loadGuests() {
		if g.FamilyID == familyID {
			members = append(members, g)
			memberIDs[g.ID] = true
		}
	}
	return members, memberIDs
}

func (s *CSVStore) FindRSVPByFamily(ctx context.Context, familyID uint) (*models.RSVPDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	members, memberIDs := s.familyMembers(familyID)
	for _, r := range s.loadRSVPs() {
		if memberIDs[r.GuestID] {
			detail := s.familyRSVPDetail(r, members, familyID)
			return &detail, nil
		}
	}
	return nil, ErrNotFound
}

func (s *CSVStore) ListRSVPsByFamily(ctx context.Context, familyID uint) ([]models.RSVPDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	members, memberIDs := s.familyMembers(familyID)
	var details []models.RSVPDetail
	for _, r := range s.loadRSVPs() {
		if memberIDs[r.GuestID] {
			details = append(details, s.familyRSVPDetail(r, members, familyID))
		}
	}
	return details, nil
}

func (s *CSVStore) InsertRSVP(ctx context.Context, rsvp *models.RSVP) (*models.RSVP, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rsvps := s.loadRSVPs()
	ids := make([]uint, 0, len(rsvps))
	for _, r := range rsvps {
		ids = append(ids, r.ID)
	}

	now := time.Now()
	created := *rsvp
	created.ID = nextID(ids)
	if created.CreatedAt.IsZero() {
		created.CreatedAt = now
	}
	created.UpdatedAt = now

	rsvps = append(rsvps, created)
	if err := s.writeRSVPs(rsvps); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateRSVP overwrites the response fields and the updated timestamp in
// place. GuestID is deliberately left alone: the row keeps pointing at the
// member it was created for.
func (s *CSVStore) UpdateRSVP(ctx context.Context, id uint, willAttend bool, dietaryRestrictions, individualNotes string) (*models.RSVP, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rsvps := s.loadRSVPs()
	for i := range rsvps {
		if rsvps[i].ID == id {
			rsvps[i].WillAttend = willAttend
			rsvps[i].DietaryRestrictions = dietaryRestrictions
			rsvps[i].IndividualNotes = individualNotes
			rsvps[i].UpdatedAt = time.Now()
			if err := s.writeRSVPs(rsvps); err != nil {
				return nil, err
			}
			return &rsvps[i], nil
		}
	}
	return nil, ErrNotFound
}
