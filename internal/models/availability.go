package models

import "time"

// Availability is one recurring weekly open-hours window of a stylist.
// Times are zero-padded 24h "HH:mm" strings so interval math can compare
// them lexically.
type Availability struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	StylistID uint `gorm:"index:idx_availability_stylist_weekday" json:"stylist_id"`

	Weekday int `gorm:"index:idx_availability_stylist_weekday" json:"weekday"` // 0=Sunday .. 6=Saturday

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
