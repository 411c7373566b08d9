package models

// Category groups products in the public catalog.
type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

func (c *Category) TableName() string {
	return "categories"
}
