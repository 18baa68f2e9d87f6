package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCategoriesRequiresFilter(t *testing.T) {
	app := newTestApplication(t)
	routes := app.routes()

	tests := []struct {
		name string
		body map[string]string
	}{
		{"empty body", map[string]string{}},
		{"missing hotel", map[string]string{"city_name": "Lahore"}},
		{"missing city", map[string]string{"hotel_name": "Ali Pizza House"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, routes, http.MethodPost, "/get_categories", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			resp := decodeBody(t, w)
			assert.Equal(t, false, resp["success"])
			assert.Equal(t, "city_name and hotel_name are required", resp["error"])
		})
	}
}

func TestGetProductsRequiresFilter(t *testing.T) {
	app := newTestApplication(t)

	w := doJSON(t, app.routes(), http.MethodPost, "/get_products", map[string]string{"city_name": "Lahore"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["success"])
}

func TestGetBannersByLocationRequiresFilter(t *testing.T) {
	app := newTestApplication(t)

	w := doJSON(t, app.routes(), http.MethodPost, "/get_banners_by_location", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderValidation(t *testing.T) {
	app := newTestApplication(t)
	routes := app.routes()

	t.Run("missing fields", func(t *testing.T) {
		w := doJSON(t, routes, http.MethodPost, "/create_order", map[string]any{
			"user_id": "u1",
			"address": "somewhere",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "user_id, address, store_id and products are required", decodeBody(t, w)["error"])
	})

	t.Run("malformed product id", func(t *testing.T) {
		w := doJSON(t, routes, http.MethodPost, "/create_order", map[string]any{
			"user_id":  "u1",
			"address":  "somewhere",
			"store_id": "s1",
			"products": []map[string]any{{"product_id": "not-an-id", "quantity": 1}},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid product id", decodeBody(t, w)["error"])
	})
}

func TestLineTotal(t *testing.T) {
	assert.Equal(t, "$20.00", lineTotal("$10", 2))
	assert.Equal(t, "$10.99", lineTotal("$10.99", 1))
	assert.Equal(t, "$900.00", lineTotal("Rs. 450", 2))
	// unparseable prices pass through untouched
	assert.Equal(t, "market price", lineTotal("market price", 3))
}
