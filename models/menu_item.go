package models

// MenuItem links a restaurant to a product it can cook. Unique per
// (restaurant, product) pair.
type MenuItem struct {
	ID           uint `gorm:"primaryKey"`
	RestaurantID uint `gorm:"not null;uniqueIndex:idx_menu_items_restaurant_product"`
	Restaurant   Restaurant
	ProductID    uint `gorm:"not null;uniqueIndex:idx_menu_items_restaurant_product"`
	Availability bool `gorm:"index;default:true"`
}

func (m *MenuItem) TableName() string {
	return "menu_items"
}
