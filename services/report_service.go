package services

import (
	"context"

	"rsvp.link/models"
	"rsvp.link/repositories"
)

// IReportService is the read-only admin aggregator. It consumes the store's
// bulk reads only and can never mutate; with the fail-open read contract an
// unhealthy medium shows up here as empty views, not errors.
type IReportService interface {
	// FamilyRoster groups every non-admin family with its members and each
	// member's own RSVP row, if any.
	FamilyRoster(ctx context.Context) ([]models.FamilyGroup, error)
	// FlatRoster is the denormalized legacy view: one row per non-admin
	// guest with the family name inlined.
	FlatRoster(ctx context.Context) ([]models.RosterEntry, error)
	Stats(ctx context.Context) (*models.Stats, error)
}

type ReportService struct {
	store repositories.IStore
}

func NewReportService(store repositories.IStore) IReportService {
	return &ReportService{store: store}
}

// load pulls the three collections in one place.
func (s *ReportService) load(ctx context.Context) ([]models.Family, []models.Guest, []models.RSVP, error) {
	families, err := s.store.ListFamilies(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	guests, err := s.store.ListGuests(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	rsvps, err := s.store.ListRSVPs(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return families, guests, rsvps, nil
}

func rsvpByGuestID(rsvps []models.RSVP) map[uint]models.RSVP {
	byGuest := make(map[uint]models.RSVP, len(rsvps))
	for _, r := range rsvps {
		if _, ok := byGuest[r.GuestID]; !ok {
			byGuest[r.GuestID] = r
		}
	}
	return byGuest
}

func memberRSVP(r models.RSVP) *models.MemberRSVP {
	return &models.MemberRSVP{
		ID:                  r.ID,
		WillAttend:          r.WillAttend,
		DietaryRestrictions: r.DietaryRestrictions,
		IndividualNotes:     r.IndividualNotes,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

func (s *ReportService) FamilyRoster(ctx context.Context) ([]models.FamilyGroup, error) {
	families, guests, rsvps, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	byGuest := rsvpByGuestID(rsvps)

	groups := make([]models.FamilyGroup, 0, len(families))
	groupIndex := make(map[uint]int, len(families))
	for _, f := range families {
		if f.FamilyName == models.AdminFamilyName {
			continue
		}
		groupIndex[f.ID] = len(groups)
		groups = append(groups, models.FamilyGroup{
			FamilyID:   f.ID,
			FamilyName: f.FamilyName,
			Members:    []models.FamilyMember{},
		})
	}

	for _, g := range guests {
		if g.IsAdmin {
			continue
		}
		i, ok := groupIndex[g.FamilyID]
		if !ok {
			continue
		}
		member := models.FamilyMember{
			GuestID:   g.ID,
			FirstName: g.FirstName,
			LastName:  g.LastName,
		}
		if r, ok := byGuest[g.ID]; ok {
			member.RSVP = memberRSVP(r)
		}
		groups[i].Members = append(groups[i].Members, member)
	}

	return groups, nil
}

func (s *ReportService) FlatRoster(ctx context.Context) ([]models.RosterEntry, error) {
	families, guests, rsvps, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	byGuest := rsvpByGuestID(rsvps)

	familyNames := make(map[uint]string, len(families))
	for _, f := range families {
		familyNames[f.ID] = f.FamilyName
	}

	entries := make([]models.RosterEntry, 0, len(guests))
	for _, g := range guests {
		if g.IsAdmin {
			continue
		}
		familyName, ok := familyNames[g.FamilyID]
		if !ok {
			familyName = "Unknown"
		}
		entry := models.RosterEntry{
			Guest: models.RosterGuest{
				ID:         g.ID,
				FirstName:  g.FirstName,
				LastName:   g.LastName,
				FamilyName: familyName,
			},
		}
		if r, ok := byGuest[g.ID]; ok {
			entry.RSVP = &models.RosterRSVP{
				WillAttend:          r.WillAttend,
				DietaryRestrictions: r.DietaryRestrictions,
				Notes:               r.IndividualNotes,
				CreatedAt:           r.CreatedAt,
				UpdatedAt:           r.UpdatedAt,
			}
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Stats counts attendance at the RSVP-row level (one row per family under
// consolidation) and pending at the guest level: a guest whose own id holds
// no RSVP row is pending, never "not attending".
func (s *ReportService) Stats(ctx context.Context) (*models.Stats, error) {
	families, guests, rsvps, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	byGuest := rsvpByGuestID(rsvps)

	stats := &models.Stats{FamilyStats: []models.FamilyStats{}}

	for _, r := range rsvps {
		if r.WillAttend {
			stats.Attending++
		} else {
			stats.NotAttending++
		}
	}

	nonAdminByFamily := make(map[uint][]models.Guest)
	for _, g := range guests {
		if g.IsAdmin {
			continue
		}
		stats.TotalGuests++
		if _, ok := byGuest[g.ID]; ok {
			stats.TotalResponses++
		} else {
			stats.Pending++
		}
		nonAdminByFamily[g.FamilyID] = append(nonAdminByFamily[g.FamilyID], g)
	}

	for _, f := range families {
		if f.FamilyName == models.AdminFamilyName {
			continue
		}
		stats.TotalFamilies++

		members := nonAdminByFamily[f.ID]
		fs := models.FamilyStats{
			FamilyName:   f.FamilyName,
			TotalMembers: len(members),
		}
		for _, g := range members {
			r, ok := byGuest[g.ID]
			if !ok {
				fs.Pending++
			} else if r.WillAttend {
				fs.Attending++
			} else {
				fs.NotAttending++
			}
		}
		stats.FamilyStats = append(stats.FamilyStats, fs)
	}

	return stats, nil
}

var _ IReportService = (*ReportService)(nil)
