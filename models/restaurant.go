package models

// Restaurant is a place that cooks orders. The address is free text and
// is geocoded lazily through the places cache.
type Restaurant struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Address      string
	ContactPhone string
	MenuItems    []MenuItem `gorm:"foreignKey:RestaurantID"`
}

func (r *Restaurant) TableName() string {
	return "restaurants"
}
