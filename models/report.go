package models

import "time"

// Report rows returned by the admin aggregator. These are read-only joins;
// nothing here can mutate the underlying collections.

// MemberRSVP is the RSVP payload embedded in roster rows.
type MemberRSVP struct {
	ID                  uint      `json:"id"`
	WillAttend          bool      `json:"willAttend"`
	DietaryRestrictions string    `json:"dietaryRestrictions"`
	IndividualNotes     string    `json:"individualNotes"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// FamilyMember is one guest inside a family roster group. RSVP is resolved by
// the guest's own id and may be nil when that guest never submitted.
type FamilyMember struct {
	GuestID   uint        `json:"guestId"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	RSVP      *MemberRSVP `json:"rsvp"`
}

// FamilyGroup is the family roster view: one non-admin family with all of its
// members.
type FamilyGroup struct {
	FamilyID   uint           `json:"familyId"`
	FamilyName string         `json:"familyName"`
	Members    []FamilyMember `json:"members"`
}

// RosterGuest identifies a guest in the flat roster view with the family name
// inlined.
type RosterGuest struct {
	ID         uint   `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	FamilyName string `json:"familyName"`
}

// RosterRSVP is the legacy RSVP shape of the flat roster view. Older
// consumers expect the notes field under "notes".
type RosterRSVP struct {
	WillAttend          bool      `json:"willAttend"`
	DietaryRestrictions string    `json:"dietaryRestrictions"`
	Notes               string    `json:"notes"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// RosterEntry is one row of the flat roster view: one non-admin guest.
type RosterEntry struct {
	Guest RosterGuest `json:"guest"`
	RSVP  *RosterRSVP `json:"rsvp"`
}

// FamilyStats is the per-family attendance breakdown.
type FamilyStats struct {
	FamilyName   string `json:"familyName"`
	TotalMembers int    `json:"totalMembers"`
	Attending    int    `json:"attending"`
	NotAttending int    `json:"notAttending"`
	Pending      int    `json:"pending"`
}

// Stats is the statistics view. Pending counts guests with no RSVP row
// resolved by their own guest id; a pending guest is never counted as not
// attending.
type Stats struct {
	TotalGuests    int           `json:"totalGuests"`
	TotalFamilies  int           `json:"totalFamilies"`
	TotalResponses int           `json:"totalResponses"`
	Attending      int           `json:"attending"`
	NotAttending   int           `json:"notAttending"`
	Pending        int           `json:"pending"`
	FamilyStats    []FamilyStats `json:"familyStats"`
}
