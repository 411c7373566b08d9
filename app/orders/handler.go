package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/svillors/star-burger/geo"
	"github.com/svillors/star-burger/models"
)

type OrderCreator interface {
	Create(order *models.Order, items []models.NewOrderItem) error
}

// CacheWarmer pre-warms the geocode cache for a delivery address.
type CacheWarmer interface {
	Resolve(ctx context.Context, address string) (geo.Point, error)
}

type OrderHandler struct {
	repo   OrderCreator
	places CacheWarmer
}

func NewOrderHandler(r OrderCreator, places CacheWarmer) *OrderHandler {
	return &OrderHandler{
		repo:   r,
		places: places,
	}
}

type orderItemInput struct {
	Product  uint `json:"product"`
	Quantity uint `json:"quantity"`
}

type orderInput struct {
	Firstname     string           `json:"firstname"`
	Lastname      string           `json:"lastname"`
	Phonenumber   string           `json:"phonenumber"`
	Address       string           `json:"address"`
	PaymentMethod string           `json:"payment_method"`
	Comment       string           `json:"comment"`
	Products      []orderItemInput `json:"products"`
}

// HandleCreate accepts an order submission. Creation is atomic: the
// order and all of its items are stored or nothing is. The delivery
// address is geocoded right away so the dashboard does not pay for the
// first lookup; a geocoding failure only logs, the order still stands.
func (h *OrderHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input orderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if fieldErrors := validate(input); len(fieldErrors) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]map[string]string{"errors": fieldErrors})
		return
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentCash
	}

	order := &models.Order{
		Firstname:     input.Firstname,
		Lastname:      input.Lastname,
		Phonenumber:   input.Phonenumber,
		Address:       input.Address,
		Status:        models.StatusUnprocessed,
		PaymentMethod: paymentMethod,
		Comment:       input.Comment,
	}

	items := make([]models.NewOrderItem, len(input.Products))
	for i, p := range input.Products {
		items[i] = models.NewOrderItem{ProductID: p.Product, Quantity: p.Quantity}
	}

	if err := h.repo.Create(order, items); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			http.Error(w, "Unknown product in order", http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to create order", http.StatusInternalServerError)
		return
	}

	if _, err := h.places.Resolve(r.Context(), order.Address); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"order_id": order.ID,
			"address":  order.Address,
		}).Warn("could not pre-warm geocode cache for order address")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]uint{"id": order.ID})
}

func validate(input orderInput) map[string]string {
	fieldErrors := make(map[string]string)
	if input.Firstname == "" {
		fieldErrors["firstname"] = "is required"
	}
	if input.Lastname == "" {
		fieldErrors["lastname"] = "is required"
	}
	if input.Phonenumber == "" {
		fieldErrors["phonenumber"] = "is required"
	}
	if input.Address == "" {
		fieldErrors["address"] = "is required"
	}
	if len(input.Products) == 0 {
		fieldErrors["products"] = "must not be empty"
	}
	for _, p := range input.Products {
		if p.Quantity < 1 {
			fieldErrors["products"] = "quantity must be at least 1"
			break
		}
	}
	if input.PaymentMethod != "" &&
		input.PaymentMethod != models.PaymentCash &&
		input.PaymentMethod != models.PaymentCard {
		fieldErrors["payment_method"] = "must be CASH or CARD"
	}
	return fieldErrors
}
