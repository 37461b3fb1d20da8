package models

import "time"

// Guest is an individual invitee belonging to exactly one family. Guests with
// IsAdmin set represent administrator accounts and never appear in
// guest-facing aggregates.
type Guest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FamilyID  uint      `gorm:"not null;index:idx_guests_family_id" json:"familyId"`
	FirstName string    `gorm:"type:varchar(255);not null;index:idx_guests_name" json:"firstName"`
	LastName  string    `gorm:"type:varchar(255);not null;index:idx_guests_name" json:"lastName"`
	IsAdmin   bool      `gorm:"default:false;index:idx_guests_admin" json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`

	RSVPs []RSVP `gorm:"foreignKey:GuestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// GuestDetail is a Guest joined with its family name. Name lookup is
// case-insensitive, so this is what the login path resolves.
type GuestDetail struct {
	ID         uint      `json:"id"`
	FamilyID   uint      `json:"familyId"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	IsAdmin    bool      `json:"isAdmin"`
	CreatedAt  time.Time `json:"createdAt"`
	FamilyName string    `json:"familyName"`
}
