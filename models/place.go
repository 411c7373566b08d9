package models

import "time"

// Place caches the geocoded coordinates of a free-text address. The
// address is the exact string that was geocoded, no normalization.
type Place struct {
	ID        uint    `gorm:"primaryKey"`
	Address   string  `gorm:"uniqueIndex;not null"`
	Longitude float64 `gorm:"not null"`
	Latitude  float64 `gorm:"not null"`
	UpdatedAt time.Time
}

func (p *Place) TableName() string {
	return "places"
}
