package models

import "time"

type Service struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	StylistID uint           `gorm:"index" json:"stylist_id"`
	Stylist   StylistProfile `gorm:"foreignKey:StylistID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CategoryID uint     `json:"category_id"`
	Category   Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	DurationMin int    `json:"duration_min"`

	// Minor currency units. Copied into the booking at creation time.
	PriceCents int64 `json:"price_cents"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
