package assignment

import (
	"sort"

	"github.com/svillors/star-burger/models"
)

// Candidates returns the restaurants able to cook every product of the
// order: the intersection of the per-product available-restaurant sets,
// folded over the order's line items. An order with no items has no
// candidates. Works entirely on preloaded menu-item data.
func Candidates(order models.Order) []models.Restaurant {
	if len(order.Items) == 0 {
		return nil
	}

	var common map[uint]models.Restaurant
	for _, item := range order.Items {
		available := make(map[uint]models.Restaurant, len(item.Product.MenuItems))
		for _, menuItem := range item.Product.MenuItems {
			if menuItem.Availability {
				available[menuItem.RestaurantID] = menuItem.Restaurant
			}
		}

		if common == nil {
			common = available
			continue
		}
		for id := range common {
			if _, ok := available[id]; !ok {
				delete(common, id)
			}
		}
	}

	restaurants := make([]models.Restaurant, 0, len(common))
	for _, restaurant := range common {
		restaurants = append(restaurants, restaurant)
	}
	// Deterministic output regardless of map iteration order.
	sort.Slice(restaurants, func(i, j int) bool {
		return restaurants[i].ID < restaurants[j].ID
	})
	return restaurants
}
