package main

import (
	"net/http"
	"testing"

	"quickbite/internal/models"
	"quickbite/internal/repository"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestSellerPanelRequiresSession(t *testing.T) {
	app := newTestApplication(t)
	routes := app.routes()

	endpoints := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/make_shop"},
		{http.MethodGet, "/check_seller_hotel"},
		{http.MethodPost, "/add_product"},
		{http.MethodGet, "/check_seller_products"},
		{http.MethodGet, "/get_seller_products"},
		{http.MethodGet, "/product_edit/abc"},
		{http.MethodPost, "/product_edit/abc"},
		{http.MethodDelete, "/product_delete/abc"},
		{http.MethodPost, "/seller_account/update_banner"},
		{http.MethodGet, "/seller_account/get_banners"},
		{http.MethodGet, "/seller_account/stats"},
		{http.MethodGet, "/all_orders"},
		{http.MethodPost, "/update_order_status"},
		{http.MethodGet, "/seller_account/edit_seller_profile"},
	}

	for _, e := range endpoints {
		t.Run(e.method+" "+e.path, func(t *testing.T) {
			w := doJSON(t, routes, e.method, e.path, map[string]string{})
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			resp := decodeBody(t, w)
			assert.Equal(t, false, resp["success"])
			assert.Equal(t, "please log in as a seller", resp["error"])
		})
	}
}

func TestSellerRegisterValidation(t *testing.T) {
	app := newTestApplication(t)
	routes := app.routes()

	w := doJSON(t, routes, http.MethodPost, "/seller_account/register", map[string]string{
		"name":  "Ali Pizza",
		"email": "a@x.com",
		// phone, address, password missing
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "all fields are required", decodeBody(t, w)["error"])
}

func TestSellerRegisterIssuesSession(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("register", func(mt *mtest.T) {
		app := newTestApplication(mt.T)
		app.db = models.NewMongoDB(mt.DB)
		app.sellers = &repository.SellerRepository{Collection: app.db.Sellers}

		mt.AddMockResponses(
			// email not yet registered
			mtest.CreateCursorResponse(0, "dominos_system.sellers", mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		w := doJSON(mt.T, app.routes(), http.MethodPost, "/seller_account/register", map[string]string{
			"name":     "Ali Pizza",
			"email":    "a@x.com",
			"phone":    "123",
			"address":  "Lahore",
			"password": "secret123",
		})

		assert.Equal(mt, http.StatusCreated, w.Code)

		resp := decodeBody(mt.T, w)
		assert.Equal(mt, true, resp["success"])
		assert.NotEmpty(mt, resp["sellerId"])
		assert.NotContains(mt, w.Body.String(), "password")

		// a fresh session token is issued alongside the account
		assert.NotEmpty(mt, w.Result().Cookies())
	})
}

func TestSellerLoginValidation(t *testing.T) {
	app := newTestApplication(t)

	w := doJSON(t, app.routes(), http.MethodPost, "/seller_account/login", map[string]string{"email": "a@x.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMakeShopValidation(t *testing.T) {
	app := newTestApplication(t)
	h := authedRouter(app, http.MethodPost, "/make_shop", app.makeShop)

	w := doJSON(t, h, http.MethodPost, "/make_shop", map[string]string{"city_name": "Lahore"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "city_name and hotel_name are required", decodeBody(t, w)["error"])
}

func TestAddProductValidation(t *testing.T) {
	app := newTestApplication(t)
	h := authedRouter(app, http.MethodPost, "/add_product", app.addProduct)

	w := doJSON(t, h, http.MethodPost, "/add_product", map[string]string{
		"category":     "Pizza",
		"product_name": "Margherita",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductEditRejectsBadID(t *testing.T) {
	app := newTestApplication(t)
	h := authedRouter(app, http.MethodGet, "/product_edit/:id", app.productEditGet)

	w := doJSON(t, h, http.MethodGet, "/product_edit/not-an-objectid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid product id", decodeBody(t, w)["error"])
}

func TestProductDeleteRejectsBadID(t *testing.T) {
	app := newTestApplication(t)
	h := authedRouter(app, http.MethodDelete, "/product_delete/:id", app.productDelete)

	w := doJSON(t, h, http.MethodDelete, "/product_delete/xyz", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatusValidation(t *testing.T) {
	app := newTestApplication(t)
	h := authedRouter(app, http.MethodPost, "/update_order_status", app.updateOrderStatus)

	t.Run("unknown status", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/update_order_status", map[string]string{
			"order_id":     primitive.NewObjectID().Hex(),
			"order_status": "shipped",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid order status", decodeBody(t, w)["error"])
	})

	t.Run("malformed order id", func(t *testing.T) {
		w := doJSON(t, h, http.MethodPost, "/update_order_status", map[string]string{
			"order_id":     "nope",
			"order_status": "delivered",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid order id", decodeBody(t, w)["error"])
	})
}

func TestEditSellerProfileValidation(t *testing.T) {
	app := newTestApplication(t)
	h := authedRouter(app, http.MethodPost, "/seller_account/edit_seller_profile", app.editSellerProfile)

	w := doJSON(t, h, http.MethodPost, "/seller_account/edit_seller_profile", map[string]string{
		"name":  "Ali Pizza",
		"email": "a@x.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
