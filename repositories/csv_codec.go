package repositories

import (
	"strconv"
	"time"

	"rsvp.link/models"
)

// Fixed, ordered column sets. The write path always emits exactly these
// columns; extra columns in a hand-edited file are dropped on the next
// rewrite.
var (
	familyColumns = []string{"id", "family_name", "created_at"}
	guestColumns  = []string{"id", "family_id", "first_name", "last_name", "is_admin", "created_at"}
	rsvpColumns   = []string{"id", "guest_id", "will_attend", "dietary_restrictions", "individual_notes", "created_at", "updated_at"}
)

const timeLayout = "2006-01-02 15:04:05"

// columnIndex maps a header row to column positions so records survive a
// reordered header.
func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	return idx
}

func field(record []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

// parseID coerces an id field. Malformed input yields the 0 sentinel, which
// never matches a real id (ids start at 1), so a corrupt row cannot crash the
// read path or alias another record.
func parseID(s string) uint {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}

// parseBool treats the literal "true" as true and anything else as false.
func parseBool(s string) bool {
	return s == "true"
}

// parseTime tolerates malformed timestamps as the zero time.
func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timeLayout)
}

func decodeFamily(record []string, idx map[string]int) models.Family {
	return models.Family{
		ID:         parseID(field(record, idx, "id")),
		FamilyName: field(record, idx, "family_name"),
		CreatedAt:  parseTime(field(record, idx, "created_at")),
	}
}

func encodeFamily(f models.Family) []string {
	return []string{
		strconv.FormatUint(uint64(f.ID), 10),
		f.FamilyName,
		formatTime(f.CreatedAt),
	}
}

func decodeGuest(record []string, idx map[string]int) models.Guest {
	return models.Guest{
		ID:        parseID(field(record, idx, "id")),
		FamilyID:  parseID(field(record, idx, "family_id")),
		FirstName: field(record, idx, "first_name"),
		LastName:  field(record, idx, "last_name"),
		IsAdmin:   parseBool(field(record, idx, "is_admin")),
		CreatedAt: parseTime(field(record, idx, "created_at")),
	}
}

func encodeGuest(g models.Guest) []string {
	return []string{
		strconv.FormatUint(uint64(g.ID), 10),
		strconv.FormatUint(uint64(g.FamilyID), 10),
		g.FirstName,
		g.LastName,
		strconv.FormatBool(g.IsAdmin),
		formatTime(g.CreatedAt),
	}
}

func decodeRSVP(record []string, idx map[string]int) models.RSVP {
	return models.RSVP{
		ID:                  parseID(field(record, idx, "id")),
		GuestID:             parseID(field(record, idx, "guest_id")),
		WillAttend:          parseBool(field(record, idx, "will_attend")),
		DietaryRestrictions: field(record, idx, "dietary_restrictions"),
		IndividualNotes:     field(record, idx, "individual_notes"),
		CreatedAt:           parseTime(field(record, idx, "created_at")),
		UpdatedAt:           parseTime(field(record, idx, "updated_at")),
	}
}

func encodeRSVP(r models.RSVP) []string {
	return []string{
		strconv.FormatUint(uint64(r.ID), 10),
		strconv.FormatUint(uint64(r.GuestID), 10),
		strconv.FormatBool(r.WillAttend),
		r.DietaryRestrictions,
		r.IndividualNotes,
		formatTime(r.CreatedAt),
		formatTime(r.UpdatedAt),
	}
}
