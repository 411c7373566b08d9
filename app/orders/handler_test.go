package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/svillors/star-burger/geo"
	"github.com/svillors/star-burger/models"
)

// --- Mocks ---

type MockOrderRepo struct {
	Err error

	LastOrder *models.Order
	LastItems []models.NewOrderItem
}

func (m *MockOrderRepo) Create(order *models.Order, items []models.NewOrderItem) error {
	m.LastOrder = order
	m.LastItems = items
	if m.Err != nil {
		return m.Err
	}
	order.ID = 42
	return nil
}

type MockWarmer struct {
	Err       error
	Addresses []string
}

func (m *MockWarmer) Resolve(ctx context.Context, address string) (geo.Point, error) {
	m.Addresses = append(m.Addresses, address)
	if m.Err != nil {
		return geo.Point{}, m.Err
	}
	return geo.Point{Lat: 55.75, Lng: 37.62}, nil
}

// --- Tests ---

func TestHandleCreate(t *testing.T) {
	validBody := `{
		"firstname": "Иван",
		"lastname": "Петров",
		"phonenumber": "+79991234567",
		"address": "Москва, ул. Льва Толстого, 16",
		"products": [{"product": 1, "quantity": 2}, {"product": 3, "quantity": 1}]
	}`

	testCases := []struct {
		name               string
		requestBody        string
		repoErr            error
		warmErr            error
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
		checkCalls         func(t *testing.T, repo *MockOrderRepo, warmer *MockWarmer)
	}{
		{
			name:               "Success",
			requestBody:        validBody,
			expectedStatusCode: http.StatusCreated,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp map[string]uint
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, uint(42), resp["id"])
			},
			checkCalls: func(t *testing.T, repo *MockOrderRepo, warmer *MockWarmer) {
				assert.NotNil(t, repo.LastOrder)
				assert.Equal(t, models.StatusUnprocessed, repo.LastOrder.Status)
				assert.Equal(t, models.PaymentCash, repo.LastOrder.PaymentMethod, "payment method defaults to cash")
				assert.Equal(t, []models.NewOrderItem{
					{ProductID: 1, Quantity: 2},
					{ProductID: 3, Quantity: 1},
				}, repo.LastItems)
				assert.Equal(t, []string{"Москва, ул. Льва Толстого, 16"}, warmer.Addresses,
					"delivery address is pre-warmed into the geocode cache")
			},
		},
		{
			name:               "Invalid JSON body",
			requestBody:        `{not json`,
			expectedStatusCode: http.StatusBadRequest,
			checkCalls: func(t *testing.T, repo *MockOrderRepo, warmer *MockWarmer) {
				assert.Nil(t, repo.LastOrder)
			},
		},
		{
			name: "Empty products list",
			requestBody: `{
				"firstname": "Иван", "lastname": "Петров",
				"phonenumber": "+79991234567", "address": "Москва",
				"products": []
			}`,
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp map[string]map[string]string
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "must not be empty", resp["errors"]["products"])
			},
			checkCalls: func(t *testing.T, repo *MockOrderRepo, warmer *MockWarmer) {
				assert.Nil(t, repo.LastOrder)
				assert.Empty(t, warmer.Addresses)
			},
		},
		{
			name: "Zero quantity",
			requestBody: `{
				"firstname": "Иван", "lastname": "Петров",
				"phonenumber": "+79991234567", "address": "Москва",
				"products": [{"product": 1, "quantity": 0}]
			}`,
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp map[string]map[string]string
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "quantity must be at least 1", resp["errors"]["products"])
			},
		},
		{
			name: "Missing required fields",
			requestBody: `{
				"products": [{"product": 1, "quantity": 1}]
			}`,
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp map[string]map[string]string
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				for _, field := range []string{"firstname", "lastname", "phonenumber", "address"} {
					assert.Contains(t, resp["errors"], field)
				}
			},
		},
		{
			name: "Unknown payment method",
			requestBody: `{
				"firstname": "Иван", "lastname": "Петров",
				"phonenumber": "+79991234567", "address": "Москва",
				"payment_method": "CRYPTO",
				"products": [{"product": 1, "quantity": 1}]
			}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Unknown product",
			requestBody:        validBody,
			repoErr:            models.ErrProductNotFound,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Repository error",
			requestBody:        validBody,
			repoErr:            errors.New("db down"),
			expectedStatusCode: http.StatusInternalServerError,
		},
		{
			name:               "Geocoding failure does not fail the order",
			requestBody:        validBody,
			warmErr:            errors.New("rate limited"),
			expectedStatusCode: http.StatusCreated,
			checkCalls: func(t *testing.T, repo *MockOrderRepo, warmer *MockWarmer) {
				assert.NotNil(t, repo.LastOrder)
				assert.Len(t, warmer.Addresses, 1)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			repo := &MockOrderRepo{Err: tc.repoErr}
			warmer := &MockWarmer{Err: tc.warmErr}
			handler := NewOrderHandler(repo, warmer)
			req := httptest.NewRequest("POST", "/api/order/", strings.NewReader(tc.requestBody))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			// Act
			handler.HandleCreate(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)

			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
			if tc.checkCalls != nil {
				tc.checkCalls(t, repo, warmer)
			}
		})
	}
}
