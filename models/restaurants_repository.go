package models

import "gorm.io/gorm"

type RestaurantsRepository struct {
	db *gorm.DB
}

func NewRestaurantsRepository(db *gorm.DB) *RestaurantsRepository {
	return &RestaurantsRepository{
		db: db,
	}
}

func (r *RestaurantsRepository) GetAll() ([]Restaurant, error) {
	var restaurants []Restaurant
	if err := r.db.Order("name").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}
