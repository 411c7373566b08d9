package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/svillors/star-burger/models"
)

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ProductResponse struct {
	ID            uint              `json:"id"`
	Name          string            `json:"name"`
	Price         float64           `json:"price"`
	SpecialStatus bool              `json:"special_status"`
	Description   string            `json:"description"`
	Category      *CategoryResponse `json:"category"`
	Image         string            `json:"image"`
}

type Banner struct {
	Title string `json:"title"`
	Src   string `json:"src"`
	Text  string `json:"text"`
}

type ProductProvider interface {
	GetAvailable() ([]models.Product, error)
}

type CatalogHandler struct {
	repo ProductProvider
}

func NewCatalogHandler(r ProductProvider) *CatalogHandler {
	return &CatalogHandler{
		repo: r,
	}
}

// HandleGetProducts lists the products at least one restaurant can
// currently cook.
func (h *CatalogHandler) HandleGetProducts(w http.ResponseWriter, r *http.Request) {
	res, err := h.repo.GetAvailable()
	if err != nil {
		http.Error(w, "failed to get products", http.StatusInternalServerError)
		return
	}

	products := make([]ProductResponse, len(res))
	for i, p := range res {
		var category *CategoryResponse
		if p.Category != nil {
			category = &CategoryResponse{
				ID:   p.Category.ID,
				Name: p.Category.Name,
			}
		}
		products[i] = ProductResponse{
			ID:            p.ID,
			Name:          p.Name,
			Price:         p.Price.InexactFloat64(),
			SpecialStatus: p.SpecialStatus,
			Description:   p.Description,
			Category:      category,
			Image:         p.Image,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(products); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// HandleGetBanners serves the landing page promo banners.
// TODO move banner data to the database.
func (h *CatalogHandler) HandleGetBanners(w http.ResponseWriter, r *http.Request) {
	banners := []Banner{
		{
			Title: "Burger",
			Src:   "/static/burger.jpg",
			Text:  "Tasty Burger at your door step",
		},
		{
			Title: "Spices",
			Src:   "/static/food.jpg",
			Text:  "All Cuisines",
		},
		{
			Title: "New York",
			Src:   "/static/tasty.jpg",
			Text:  "Food is incomplete without a tasty dessert",
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(banners); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
