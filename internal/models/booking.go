package models

import "time"

type Booking struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	ClientID uint `gorm:"index" json:"client_id"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	StylistID uint           `gorm:"index:idx_booking_stylist_date" json:"stylist_id"`
	Stylist   StylistProfile `gorm:"foreignKey:StylistID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Calendar day at midnight; start/end are "HH:mm" within that day.
	Date      time.Time `gorm:"index:idx_booking_stylist_date" json:"date"`
	StartTime string    `gorm:"size:5;not null" json:"start_time"`
	EndTime   string    `gorm:"size:5;not null" json:"end_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// Captured from the service at creation, never recomputed.
	TotalPriceCents int64 `json:"total_price_cents"`

	Address string `gorm:"size:255;not null" json:"address"`
	City    string `gorm:"size:100;not null" json:"city"`
	Notes   string `gorm:"size:255" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
