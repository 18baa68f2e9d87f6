package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"quickbite/internal/models"
	"quickbite/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userForm struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

func (app *application) userRegister(w http.ResponseWriter, r *http.Request) {
	var form userForm
	if err := app.decodeJSON(r, &form); err != nil {
		app.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if form.Name == "" || form.Address == "" || form.Password == "" {
		app.fail(w, http.StatusBadRequest, "name, address and password are required")
		return
	}

	user, err := app.users.Insert(form.Name, form.Address, form.Password)
	if err != nil {
		app.serverError(w, err)
		return
	}

	app.writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "account created",
		"userId":  user.ID.Hex(),
		"user":    user,
	})
}

func (app *application) userLogin(w http.ResponseWriter, r *http.Request) {
	var form userForm
	if err := app.decodeJSON(r, &form); err != nil {
		app.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if form.Name == "" || form.Password == "" {
		app.fail(w, http.StatusBadRequest, "name and password are required")
		return
	}

	user, err := app.users.Authenticate(form.Name, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			app.fail(w, http.StatusUnauthorized, "no account with this name")
		case errors.Is(err, repository.ErrWrongPassword):
			app.fail(w, http.StatusUnauthorized, "incorrect password")
		default:
			app.serverError(w, err)
		}
		return
	}

	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"userId":  user.ID.Hex(),
		"user":    user,
	})
}

type cartForm struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (app *application) getCart(w http.ResponseWriter, r *http.Request) {
	var form cartForm
	if err := app.decodeJSON(r, &form); err != nil || form.UserID == "" {
		app.fail(w, http.StatusBadRequest, "user_id is required")
		return
	}
	cart, err := app.db.GetCart(form.UserID)
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"cart":    cart,
	})
}

func (app *application) updateCart(w http.ResponseWriter, r *http.Request) {
	var form cartForm
	if err := app.decodeJSON(r, &form); err != nil || form.UserID == "" || form.ProductID == "" {
		app.fail(w, http.StatusBadRequest, "user_id and product_id are required")
		return
	}
	if form.Quantity < 1 {
		app.fail(w, http.StatusBadRequest, "quantity must be at least 1")
		return
	}
	productID, err := primitive.ObjectIDFromHex(form.ProductID)
	if err != nil {
		app.fail(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := app.db.SetCartItem(form.UserID, productID, form.Quantity); err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			app.fail(w, http.StatusNotFound, "product not found")
			return
		}
		app.serverError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "cart updated",
	})
}

func (app *application) removeFromCart(w http.ResponseWriter, r *http.Request) {
	var form cartForm
	if err := app.decodeJSON(r, &form); err != nil || form.UserID == "" || form.ProductID == "" {
		app.fail(w, http.StatusBadRequest, "user_id and product_id are required")
		return
	}
	productID, err := primitive.ObjectIDFromHex(form.ProductID)
	if err != nil {
		app.fail(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := app.db.RemoveCartItem(form.UserID, productID); err != nil {
		app.serverError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "item removed",
	})
}

type orderItemForm struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type createOrderForm struct {
	UserID     string          `json:"user_id"`
	Address    string          `json:"address"`
	StoreID    string          `json:"store_id"`
	TotalPrice string          `json:"total_price"`
	Products   []orderItemForm `json:"products"`

	// single-product form of the same request
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// createOrder places one Order document per cart line. Each order gets a
// snapshot of the product's name and image, an always-pending initial
// status, and a follow-up counter bump on the product that is not
// transactional with the insert.
func (app *application) createOrder(w http.ResponseWriter, r *http.Request) {
	var form createOrderForm
	if err := app.decodeJSON(r, &form); err != nil {
		app.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(form.Products) == 0 && form.ProductID != "" {
		form.Products = []orderItemForm{{ProductID: form.ProductID, Quantity: form.Quantity}}
	}
	if form.UserID == "" || form.Address == "" || form.StoreID == "" || len(form.Products) == 0 {
		app.fail(w, http.StatusBadRequest, "user_id, address, store_id and products are required")
		return
	}

	now := time.Now()
	created := make([]models.Order, 0, len(form.Products))

	for _, item := range form.Products {
		if item.Quantity < 1 {
			item.Quantity = 1
		}
		productID, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			app.fail(w, http.StatusBadRequest, "invalid product id")
			return
		}

		product, err := app.db.GetProduct(productID)
		if err != nil {
			if errors.Is(err, models.ErrNoRecord) {
				app.fail(w, http.StatusNotFound, "product not found")
				return
			}
			app.serverError(w, err)
			return
		}

		store, err := app.db.ResolveStore(form.StoreID, product)
		if err != nil {
			if errors.Is(err, models.ErrNoRecord) {
				app.fail(w, http.StatusNotFound, "store not found")
				return
			}
			app.serverError(w, err)
			return
		}

		order := models.Order{
			ID:              primitive.NewObjectID(),
			UserID:          form.UserID,
			ProductID:       product.ID,
			ProductName:     product.ProductName,
			ProductImg:      product.ProductImg,
			Quantity:        item.Quantity,
			TotalPrice:      lineTotal(product.ProductPrize, item.Quantity),
			DeliveryAddress: form.Address,
			StoreID:         form.StoreID,
			SellerID:        store.SellerID,
			HotelName:       store.HotelName,
			CityName:        store.CityName,
			OrderStatus:     "pending",
			CreatedAt:       now,
		}
		if err := app.db.InsertOrder(order); err != nil {
			app.serverError(w, err)
			return
		}

		// The order stands even if the counter write fails.
		if err := app.db.MarkProductOrdered(product.ID, time.Now()); err != nil {
			app.errorLog.Printf("failed to mark product %s ordered: %v", product.ID.Hex(), err)
		}

		created = append(created, order)
	}

	app.writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "order placed",
		"orders":  created,
	})
}

// lineTotal prices one order line from the product's currency-tagged
// price string; an unparseable price is passed through as-is.
func lineTotal(prize string, quantity int) string {
	v, ok := models.ParsePrice(prize)
	if !ok {
		return prize
	}
	return fmt.Sprintf("$%.2f", v*float64(quantity))
}
