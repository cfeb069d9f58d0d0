package models

import "time"

// StylistProfile is the bookable identity of a stylist. Bookings and
// availability reference the profile, not the user account behind it.
type StylistProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	DisplayName string `gorm:"size:100;not null" json:"display_name"`
	Bio         string `gorm:"size:500" json:"bio"`
	City        string `gorm:"size:100" json:"city"`
	Active      bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
