package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderTotalCost(t *testing.T) {
	t.Run("sums quantity times snapshot price", func(t *testing.T) {
		order := Order{Items: []OrderItem{
			{Quantity: 2, Price: decimal.NewFromFloat(317.50)},
			{Quantity: 1, Price: decimal.NewFromFloat(95)},
		}}
		assert.True(t, order.TotalCost().Equal(decimal.NewFromFloat(730)))
	})

	t.Run("empty order costs nothing", func(t *testing.T) {
		order := Order{}
		assert.True(t, order.TotalCost().IsZero())
	})

	t.Run("uses the snapshot, not the current product price", func(t *testing.T) {
		order := Order{Items: []OrderItem{
			{
				Quantity: 1,
				Price:    decimal.NewFromFloat(100),
				Product:  Product{Price: decimal.NewFromFloat(250)},
			},
		}}
		assert.True(t, order.TotalCost().Equal(decimal.NewFromFloat(100)))
	})
}
