package models

import "time"

// AdminFamilyName is the designated administrator household. It is excluded
// from every guest-facing aggregate and from family totals.
const AdminFamilyName = "Admin Family"

// Family is a household unit. It owns its guests and, through them, a single
// shared RSVP outcome.
type Family struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FamilyName string    `gorm:"type:varchar(255);not null" json:"familyName"`
	CreatedAt  time.Time `json:"createdAt"`

	Guests []Guest `gorm:"foreignKey:FamilyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
