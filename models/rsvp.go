package models

import "time"

// RSVP is the attendance response record. At most one row exists per family:
// any member's submission is consolidated into the family's existing row.
// GuestID identifies the member the row was created for and is NOT rewritten
// when a different family member updates the shared response, so it is a
// historical artifact rather than a "last edited by" pointer. Resolve RSVPs
// through family membership, never by GuestID alone.
type RSVP struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	GuestID             uint      `gorm:"not null;index:idx_rsvps_guest_id" json:"guestId"`
	WillAttend          bool      `gorm:"not null" json:"willAttend"`
	DietaryRestrictions string    `gorm:"type:text;default:''" json:"dietaryRestrictions"`
	IndividualNotes     string    `gorm:"type:text;default:''" json:"individualNotes"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// RSVPDetail is an RSVP joined with the submitting guest's name and family.
type RSVPDetail struct {
	ID                  uint      `json:"id"`
	GuestID             uint      `json:"guestId"`
	WillAttend          bool      `json:"willAttend"`
	DietaryRestrictions string    `json:"dietaryRestrictions"`
	IndividualNotes     string    `json:"individualNotes"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
	FirstName           string    `json:"firstName"`
	LastName            string    `json:"lastName"`
	FamilyName          string    `json:"familyName"`
}
