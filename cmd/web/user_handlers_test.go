package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRegisterValidation(t *testing.T) {
	app := newTestApplication(t)
	routes := app.routes()

	w := doJSON(t, routes, http.MethodPost, "/user/register", map[string]string{
		"name": "Sara",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "name, address and password are required", decodeBody(t, w)["error"])
}

func TestUserLoginValidation(t *testing.T) {
	app := newTestApplication(t)

	w := doJSON(t, app.routes(), http.MethodPost, "/user/login", map[string]string{"name": "Sara"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartValidation(t *testing.T) {
	app := newTestApplication(t)
	routes := app.routes()

	t.Run("get_cart requires user_id", func(t *testing.T) {
		w := doJSON(t, routes, http.MethodPost, "/user/get_cart", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update_cart requires positive quantity", func(t *testing.T) {
		w := doJSON(t, routes, http.MethodPost, "/user/update_cart", map[string]any{
			"user_id":    "u1",
			"product_id": "abc",
			"quantity":   0,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "quantity must be at least 1", decodeBody(t, w)["error"])
	})

	t.Run("update_cart rejects malformed product id", func(t *testing.T) {
		w := doJSON(t, routes, http.MethodPost, "/user/update_cart", map[string]any{
			"user_id":    "u1",
			"product_id": "not-an-objectid",
			"quantity":   2,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid product id", decodeBody(t, w)["error"])
	})

	t.Run("remove_from_cart requires product_id", func(t *testing.T) {
		w := doJSON(t, routes, http.MethodPost, "/user/remove_from_cart", map[string]string{
			"user_id": "u1",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
