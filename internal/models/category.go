package models

import "time"

// Category rows are seeded at migration time; there is no admin CRUD.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`

	CreatedAt time.Time `json:"created_at"`
}
