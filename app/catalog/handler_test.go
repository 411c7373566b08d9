package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/svillors/star-burger/models"
)

// --- Mock Repo ---

type MockProductRepo struct {
	Products []models.Product
	Err      error
}

func (m *MockProductRepo) GetAvailable() ([]models.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Products, nil
}

// --- Tests ---

func TestHandleGetProducts(t *testing.T) {
	burgers := models.Category{ID: 1, Name: "Бургеры"}
	burgersID := burgers.ID

	testCases := []struct {
		name               string
		mockRepoSetup      func() *MockProductRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Success with category and price",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{
					Products: []models.Product{
						{
							ID:          1,
							Name:        "Стейкхаус бургер",
							CategoryID:  &burgersID,
							Category:    &burgers,
							Price:       decimal.NewFromFloat(317.22),
							Description: "Сочный бургер",
							Image:       "/static/burger.jpg",
						},
					},
				}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []ProductResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 1)
				assert.Equal(t, "Стейкхаус бургер", resp[0].Name)
				assert.Equal(t, 317.22, resp[0].Price)
				assert.NotNil(t, resp[0].Category)
				assert.Equal(t, "Бургеры", resp[0].Category.Name)
			},
		},
		{
			name: "Product without category",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{
					Products: []models.Product{
						{ID: 2, Name: "Кола", Price: decimal.NewFromFloat(95)},
					},
				}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []ProductResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 1)
				assert.Nil(t, resp[0].Category)
			},
		},
		{
			name: "Empty catalog",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []ProductResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 0)
			},
		},
		{
			name: "Repository error",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{Err: errors.New("db down")}
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			handler := NewCatalogHandler(tc.mockRepoSetup())
			req := httptest.NewRequest("GET", "/api/products/", nil)
			rec := httptest.NewRecorder()

			// Act
			handler.HandleGetProducts(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}

func TestHandleGetBanners(t *testing.T) {
	handler := NewCatalogHandler(&MockProductRepo{})
	req := httptest.NewRequest("GET", "/api/banners/", nil)
	rec := httptest.NewRecorder()

	handler.HandleGetBanners(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var banners []Banner
	err := json.NewDecoder(rec.Body).Decode(&banners)
	assert.NoError(t, err)
	assert.Len(t, banners, 3)
	assert.Equal(t, "Burger", banners[0].Title)
	for _, b := range banners {
		assert.NotEmpty(t, b.Src)
		assert.NotEmpty(t, b.Text)
	}
}
