package models

import (
	"github.com/shopspring/decimal"
)

// Product is a catalog item customers can order.
// It is considered available when at least one restaurant has an
// available menu item for it.
type Product struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"not null"`
	CategoryID    *uint
	Category      *Category       `gorm:"foreignKey:CategoryID"`
	Price         decimal.Decimal `gorm:"type:decimal(8,2);not null"`
	Image         string
	SpecialStatus bool `gorm:"index"`
	Description   string
	MenuItems     []MenuItem `gorm:"foreignKey:ProductID"`
}

func (p *Product) TableName() string {
	return "products"
}
