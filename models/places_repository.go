package models

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrPlaceNotFound is returned when an address has never been geocoded.
var ErrPlaceNotFound = errors.New("place not found")

type PlacesRepository struct {
	db *gorm.DB
}

func NewPlacesRepository(db *gorm.DB) *PlacesRepository {
	return &PlacesRepository{
		db: db,
	}
}

func (r *PlacesRepository) GetByAddress(address string) (*Place, error) {
	var place Place
	if err := r.db.Where("address = ?", address).First(&place).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaceNotFound
		}
		return nil, err
	}
	return &place, nil
}

// Upsert inserts the place or refreshes its coordinates. Concurrent
// requests racing on the same address resolve to last-write-wins.
func (r *PlacesRepository) Upsert(place *Place) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoUpdates: clause.AssignmentColumns([]string{"longitude", "latitude", "updated_at"}),
	}).Create(place).Error
}

func (r *PlacesRepository) DeleteByAddress(address string) error {
	return r.db.Where("address = ?", address).Delete(&Place{}).Error
}
