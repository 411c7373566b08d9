package restaurateur

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/svillors/star-burger/assignment"
	"github.com/svillors/star-burger/models"
)

type OrderProvider interface {
	GetOpen() ([]models.Order, error)
}

type OrderAssigner interface {
	Assign(ctx context.Context, order models.Order) []assignment.RankedRestaurant
}

type ProductProvider interface {
	GetWithMenuItems() ([]models.Product, error)
}

type RestaurantProvider interface {
	GetAll() ([]models.Restaurant, error)
}

type CacheInvalidator interface {
	Invalidate(ctx context.Context, address string) error
}

// Handler serves the staff dashboard API.
type Handler struct {
	orders      OrderProvider
	assigner    OrderAssigner
	products    ProductProvider
	restaurants RestaurantProvider
	places      CacheInvalidator
}

func NewHandler(
	orders OrderProvider,
	assigner OrderAssigner,
	products ProductProvider,
	restaurants RestaurantProvider,
	places CacheInvalidator,
) *Handler {
	return &Handler{
		orders:      orders,
		assigner:    assigner,
		products:    products,
		restaurants: restaurants,
		places:      places,
	}
}

type RankedRestaurantResponse struct {
	Name     string `json:"name"`
	Distance string `json:"distance"`
}

type OrderResponse struct {
	ID            uint                       `json:"id"`
	Firstname     string                     `json:"firstname"`
	Lastname      string                     `json:"lastname"`
	Phonenumber   string                     `json:"phonenumber"`
	Address       string                     `json:"address"`
	Status        string                     `json:"status"`
	PaymentMethod string                     `json:"payment_method"`
	Comment       string                     `json:"comment"`
	TotalCost     float64                    `json:"total_cost"`
	Restaurants   []RankedRestaurantResponse `json:"restaurants"`
}

// HandleGetOrders lists open orders with their ranked restaurant
// candidates. The ranking is recomputed on every request; one order
// with a bad address does not stop the rest of the batch.
func (h *Handler) HandleGetOrders(w http.ResponseWriter, r *http.Request) {
	open, err := h.orders.GetOpen()
	if err != nil {
		http.Error(w, "failed to get orders", http.StatusInternalServerError)
		return
	}

	response := make([]OrderResponse, len(open))
	for i, order := range open {
		ranked := h.assigner.Assign(r.Context(), order)
		restaurants := make([]RankedRestaurantResponse, len(ranked))
		for j, candidate := range ranked {
			restaurants[j] = RankedRestaurantResponse{
				Name:     candidate.Name,
				Distance: candidate.Distance.String(),
			}
		}
		response[i] = OrderResponse{
			ID:            order.ID,
			Firstname:     order.Firstname,
			Lastname:      order.Lastname,
			Phonenumber:   order.Phonenumber,
			Address:       order.Address,
			Status:        order.Status,
			PaymentMethod: order.PaymentMethod,
			Comment:       order.Comment,
			TotalCost:     order.TotalCost().InexactFloat64(),
			Restaurants:   restaurants,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type ProductAvailabilityResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	// Availability follows the order of the restaurants list.
	Availability []bool `json:"availability"`
}

type AvailabilityMatrixResponse struct {
	Restaurants []string                      `json:"restaurants"`
	Products    []ProductAvailabilityResponse `json:"products"`
}

// HandleGetProducts renders the product-by-restaurant availability
// matrix for the catalog management view.
func (h *Handler) HandleGetProducts(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.restaurants.GetAll()
	if err != nil {
		http.Error(w, "failed to get restaurants", http.StatusInternalServerError)
		return
	}
	products, err := h.products.GetWithMenuItems()
	if err != nil {
		http.Error(w, "failed to get products", http.StatusInternalServerError)
		return
	}

	response := AvailabilityMatrixResponse{
		Restaurants: make([]string, len(restaurants)),
		Products:    make([]ProductAvailabilityResponse, len(products)),
	}
	for i, restaurant := range restaurants {
		response.Restaurants[i] = restaurant.Name
	}
	for i, product := range products {
		available := make(map[uint]bool, len(product.MenuItems))
		for _, menuItem := range product.MenuItems {
			available[menuItem.RestaurantID] = menuItem.Availability
		}
		row := make([]bool, len(restaurants))
		for j, restaurant := range restaurants {
			row[j] = available[restaurant.ID]
		}
		response.Products[i] = ProductAvailabilityResponse{
			ID:           product.ID,
			Name:         product.Name,
			Availability: row,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// HandleInvalidatePlace drops a cached address so it is re-geocoded on
// next use, for when a stale geocode needs a manual refresh.
func (h *Handler) HandleInvalidatePlace(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	if address == "" {
		http.Error(w, "Missing address", http.StatusBadRequest)
		return
	}

	if err := h.places.Invalidate(r.Context(), address); err != nil {
		http.Error(w, "Failed to invalidate place", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Place invalidated"})
}
