package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a referenced product does not exist.
var ErrProductNotFound = errors.New("product not found")

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// GetAvailable returns the products that at least one restaurant can
// currently cook, with categories preloaded.
func (r *ProductsRepository) GetAvailable() ([]Product, error) {
	available := r.db.
		Model(&MenuItem{}).
		Select("product_id").
		Where("availability = ?", true)

	var products []Product
	if err := r.db.
		Preload("Category").
		Where("id IN (?)", available).
		Order("name").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetWithMenuItems returns every product with all of its menu items
// preloaded, for the availability matrix.
func (r *ProductsRepository) GetWithMenuItems() ([]Product, error) {
	var products []Product
	if err := r.db.
		Preload("MenuItems").
		Order("name").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
