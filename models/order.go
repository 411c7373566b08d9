package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order lifecycle statuses.
const (
	StatusUnprocessed = "UNPR"
	StatusCooking     = "COOK"
	StatusProcessed   = "PROC"
)

// Payment methods.
const (
	PaymentCash = "CASH"
	PaymentCard = "CARD"
)

// Order is a customer order with its delivery address and line items.
// The ranked restaurant candidates shown on the dashboard are computed
// on every read and never persisted.
type Order struct {
	ID            uint   `gorm:"primaryKey"`
	Firstname     string `gorm:"not null"`
	Lastname      string `gorm:"not null"`
	Phonenumber   string `gorm:"not null"`
	Address       string `gorm:"not null"`
	Status        string `gorm:"not null;default:UNPR"`
	PaymentMethod string `gorm:"not null;default:CASH"`
	Comment       string
	CookingNowID  *uint
	CookingNow    *Restaurant `gorm:"foreignKey:CookingNowID"`
	CreatedAt     time.Time
	CalledAt      *time.Time
	DeliveredAt   *time.Time
	Items         []OrderItem `gorm:"foreignKey:OrderID"`
}

func (o *Order) TableName() string {
	return "orders"
}

// TotalCost folds quantity times the snapshot price over the order's items.
func (o *Order) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// OrderItem is one line of an order. Price is snapshotted from the
// product at creation time so later price edits do not change old orders.
type OrderItem struct {
	ID        uint `gorm:"primaryKey"`
	OrderID   uint `gorm:"not null"`
	ProductID uint `gorm:"not null"`
	Product   Product
	Quantity  uint            `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(8,2);not null"`
}

func (i *OrderItem) TableName() string {
	return "order_items"
}
