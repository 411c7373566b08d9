package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// NewOrderItem is one requested line of an order being submitted.
type NewOrderItem struct {
	ProductID uint
	Quantity  uint
}

type OrdersRepository struct {
	db *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		db: db,
	}
}

// Create persists the order and all of its items in a single
// transaction, snapshotting current product prices. Either the whole
// order is stored or nothing is.
func (r *OrdersRepository) Create(order *Order, items []NewOrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		ids := make([]uint, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ProductID)
		}

		var products []Product
		if err := tx.Where("id IN ?", ids).Find(&products).Error; err != nil {
			return err
		}
		byID := make(map[uint]Product, len(products))
		for _, product := range products {
			byID[product.ID] = product
		}

		order.Items = make([]OrderItem, 0, len(items))
		for _, item := range items {
			product, ok := byID[item.ProductID]
			if !ok {
				return ErrProductNotFound
			}
			order.Items = append(order.Items, OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     product.Price,
			})
		}

		return tx.Create(order).Error
	})
}

// GetOpen returns the orders that still need a restaurant, oldest
// first, with everything the assignment pipeline reads already loaded:
// line items, their products and the available menu items with their
// restaurants. Availability is resolved from this data in memory, no
// further queries happen during ranking.
func (r *OrdersRepository) GetOpen() ([]Order, error) {
	var orders []Order
	if err := r.db.
		Where("status <> ?", StatusProcessed).
		Preload("Items.Product").
		Preload("Items.Product.MenuItems", "availability = ?", true).
		Preload("Items.Product.MenuItems.Restaurant").
		Preload("CookingNow").
		Order("created_at").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
