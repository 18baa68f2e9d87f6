package main

import (
	"errors"
	"net/http"
	"time"

	"quickbite/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type sellerForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

func (app *application) sellerRegister(w http.ResponseWriter, r *http.Request) {
	var form sellerForm
	if err := app.decodeJSON(r, &form); err != nil {
		app.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if form.Name == "" || form.Email == "" || form.Phone == "" || form.Address == "" || form.Password == "" {
		app.fail(w, http.StatusBadRequest, "all fields are required")
		return
	}

	seller, err := app.sellers.Insert(form.Name, form.Email, form.Phone, form.Address, form.Password)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			app.fail(w, http.StatusConflict, "an account with this email already exists")
			return
		}
		app.serverError(w, err)
		return
	}

	if err := app.session.RenewToken(r.Context()); err != nil {
		app.serverError(w, err)
		return
	}
	app.session.Put(r.Context(), "sellerID", seller.ID.Hex())

	app.writeJSON(w, http.StatusCreated, map[string]any{
		"success":  true,
		"message":  "seller account created",
		"sellerId": seller.ID.Hex(),
		"seller":   seller,
	})
}

func (app *application) sellerLogin(w http.ResponseWriter, r *http.Request) {
	var form sellerForm
	if err := app.decodeJSON(r, &form); err != nil {
		app.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if form.Email == "" || form.Password == "" {
		app.fail(w, http.StatusBadRequest, "email and password are required")
		return
	}

	seller, err := app.sellers.Authenticate(form.Email, form.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			app.fail(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		app.serverError(w, err)
		return
	}

	if err := app.session.RenewToken(r.Context()); err != nil {
		app.serverError(w, err)
		return
	}
	app.session.Put(r.Context(), "sellerID", seller.ID.Hex())

	app.writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"sellerId": seller.ID.Hex(),
		"seller":   seller,
	})
}

// sellerLogout is idempotent: destroying an absent session succeeds.
func (app *application) sellerLogout(w http.ResponseWriter, r *http.Request) {
	app.session.Remove(r.Context(), "sellerID")
	if err := app.session.Destroy(r.Context()); err != nil {
		app.serverError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "logged out",
	})
}

func (app *application) sellerProfile(w http.ResponseWriter, r *http.Request) {
	sellerID, err := app.sellerFromSession(r)
	if err != nil {
		app.fail(w, http.StatusUnauthorized, "please log in as a seller")
		return
	}
	seller, err := app.sellers.Get(sellerID)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			app.fail(w, http.StatusNotFound, "seller not found")
			return
		}
		app.serverError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"seller":  seller,
	})
}

func (app *application) editSellerProfile(w http.ResponseWriter, r *http.Request) {
	sellerID, err := app.sellerFromSession(r)
	if err != nil {
		app.fail(w, http.StatusUnauthorized, "please log in as a seller")
		return
	}

	var form sellerForm
	if err := app.decodeJSON(r, &form); err != nil {
		app.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if form.Name == "" || form.Email == "" || form.Phone == "" || form.Address == "" {
		app.fail(w, http.StatusBadRequest, "name, email, phone and address are required")
		return
	}

	seller, err := app.sellers.Update(sellerID, form.Name, form.Email, form.Phone, form.Address, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrDuplicateEmail):
			app.fail(w, http.StatusConflict, "this email is already taken")
		case errors.Is(err, models.ErrNoRecord):
			app.fail(w, http.StatusNotFound, "seller not found")
		default:
			app.serverError(w, err)
		}
		return
	}

	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "profile updated",
		"seller":  seller,
	})
}

type makeShopForm struct {
	CityName  string `json:"city_name"`
	HotelName string `json:"hotel_name"`
	SellerID  string `json:"seller_id"`
}

func (app *application) makeShop(w http.ResponseWriter, r *http.Request) {
	sellerID, err := app.sellerFromSession(r)
	if err != nil {
		app.fail(w, http.StatusUnauthorized, "please log in as a seller")
		return
	}

	var form makeShopForm
	if err := app.decodeJSON(r, &form); err != nil {
		app.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if form.CityName == "" || form.HotelName == "" {
		app.fail(w, http.StatusBadRequest, "city_name and hotel_name are required")
		return
	}

	hotel, ref, err := app.db.CreateShop(sellerID, form.CityName, form.HotelName)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNoRecord):
			app.fail(w, http.StatusNotFound, "seller not found")
		case errors.Is(err, models.ErrShopExists):
			app.fail(w, http.StatusConflict, "you already have a shop")
		case errors.Is(err, models.ErrDuplicateHotel):
			app.fail(w, http.StatusConflict, "a hotel with this name already exists in this city")
		default:
			app.serverError(w, err)
		}
		return
	}

	app.writeJSON(w, http.StatusCreated, map[string]any{
		"success":         true,
		"message":         "shop created",
		"hotelDocumentId": hotel.ID.Hex(),
		"hotel":           ref,
	})
}

func (app *application) checkSellerHotel(w http.ResponseWriter, r *http.Request) {
	sellerID, err := app.sellerFromSession(r)
	if err != nil {
		app.fail(w, http.StatusUnauthorized, "please log in as a seller")
		return
	}

	hotel, err := app.db.GetHotelBySeller(sellerID)
	if errors.Is(err, models.ErrNoRecord) {
		app.writeJSON(w, http.StatusOK, map[string]any{
			"success":  true,
			"hasHotel": false,
		})
		return
	}
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"hasHotel": true,
		"hotel":    hotel,
	})
}

type productForm struct {
	Category     string `json:"category"`
	Subcategory  string `json:"subcategory"`
	ProductName  string `json:"product_name"`
	ProductImg   string `json:"product_img"`
	ProductDesc  string `json:"product_desc"`
	ProductPrize string `json:"product_prize"`
}

func (app *application) addProduct(w http.ResponseWriter, r *http.Request) {
	sellerID, err := app.sellerFromSession(r)
	if err != nil {
		app.fail(w, http.StatusUnauthorized, "please log in as a seller")
		return
	}

	var form productForm
	if err := app.decodeJSON(r, &form); err != nil {
		app.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if form.Category == "" || form.Subcategory == "" || form.ProductName == "" || form.ProductPrize == "" {
		app.fail(w, http.StatusBadRequest, "category, subcategory, product_name and product_prize are required")
		return
	}

	hotel, err := app.db.GetHotelBySeller(sellerID)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			app.fail(w, http.StatusNotFound, "create a shop first")
			return
		}
		app.serverError(w, err)
		return
	}

	if err := app.db.EnsureSubcategory(hotel.CityName, hotel.HotelName, form.Category, form.Subcategory); err != nil {
		app.serverError(w, err)
		return
	}

	product := models.Product{
		ID:           primitive.NewObjectID(),
		CityName:     hotel.CityName,
		HotelName:    hotel.HotelName,
		Category:     form.Category,
		Subcategory:  form.Subcategory,
		ProductName:  form.ProductName,
		ProductImg:   form.ProductImg,
		ProductDesc:  form.ProductDesc,
		ProductPrize: form.ProductPrize,
		SellerID:     sellerID,
		TotalOrdered: 0,
		LastOrdered:  nil,
		CreatedAt:    time.Now(),
	}
	if _, err := app.db.InsertProduct(product); err != nil {
		app.serverError(w, err)
		return
	}

	app.writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "product created",
		"product": product,
	})
}

func (app *application) checkSellerProducts(w http.ResponseWriter, r *http.Request) {
	sellerID, err := app.sellerFromSession(r)
	if err != nil {
		app.fail(w, http.StatusUnauthorized, "please log in as a seller")
		return
	}
	products, err := app.db.GetProductsBySeller(sellerID)
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"hasProducts": len(products) > 0,
	})
}

func (app *application) getSellerProducts(w http.ResponseWriter, r *http.Request) {
	sellerID, err := app.sellerFromSession(r)
	if err != nil {
		app.fail(w, http.StatusUnauthorized, "please log in as a seller")
		return
	}
	products, err := app.db.GetProductsBySeller(sellerID)
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"products": products,
	})
}

func (app *application) productEditGet(w http.ResponseWriter, r *http.Request) {
	sellerID, err := app.sellerFromSession(r)
	if err != nil {
		app.fail(w, http.StatusUnauthorized, "please log in as a seller")
		return
	}
	productID, err := primitive.ObjectIDFromHex(r.URL.Query().Get(":id"))
	if err != nil {
		app.fail(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := app.db.GetSellerProduct(productID, sellerID)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			app.fail(w, http.StatusNotFound, "product not found or no permission")
			return
		}
		app.serverError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"product": product,
	})
}

func (app *application) productEditPost(w http.ResponseWriter, r *http.Request) {
	sellerID, err := app.sellerFromSession(r)
	if err != nil {
		app.fail(w, http.StatusUnauthorized, "please log in as a seller")
		return
	}
	productID, err := primitive.ObjectIDFromHex(r.URL.Query().Get(":id"))
	if err != nil {
		app.fail(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var form productForm
	if err := app.decodeJSON(r, &form); err != nil {
		app.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if form.Category == "" || form.Subcategory == "" || form.ProductName == "" || form.ProductPrize == "" {
		app.fail(w, http.StatusBadRequest, "category, subcategory, product_name and product_prize are required")
		return
	}

	existing, err := app.db.GetSellerProduct(productID, sellerID)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			app.fail(w, http.StatusNotFound, "product not found or no permission")
			return
		}
		app.serverError(w, err)
		return
	}

	// Register the (possibly new) subcategory for the storefront nav.
	// The old entry stays even if this product was its last user.
	if err := app.db.EnsureSubcategory(existing.CityName, existing.HotelName, form.Category, form.Subcategory); err != nil {
		app.serverError(w, err)
		return
	}

	update := models.Product{
		Category:     form.Category,
		Subcategory:  form.Subcategory,
		ProductName:  form.ProductName,
		ProductImg:   form.ProductImg,
		ProductDesc:  form.ProductDesc,
		ProductPrize: form.ProductPrize,
	}
	if err := app.db.UpdateProduct(productID, sellerID, update); err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			app.fail(w, http.StatusNotFound, "product not found or no permission")
			return
		}
		app.serverError(w, err)
		return
	}

	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "product updated",
	})
}

func (app *application) productDelete(w http.ResponseWriter, r *http.Request) {
	sellerID, err := app.sellerFromSession(r)
	if err != nil {
		app.fail(w, http.StatusUnauthorized, "please log in as a seller")
		return
	}
	productID, err := primitive.ObjectIDFromHex(r.URL.Query().Get(":id"))
	if err != nil {
		app.fail(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := app.db.DeleteProduct(productID, sellerID); err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			app.fail(w, http.StatusNotFound, "product not found or no permission")
			return
		}
		app.serverError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "product deleted",
	})
}

func (app *application) sellerStats(w http.ResponseWriter, r *http.Request) {
	sellerID, err := app.sellerFromSession(r)
	if err != nil {
		app.fail(w, http.StatusUnauthorized, "please log in as a seller")
		return
	}

	seller, err := app.sellers.Get(sellerID)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			app.fail(w, http.StatusNotFound, "seller not found")
			return
		}
		app.serverError(w, err)
		return
	}

	hotel, err := app.db.GetHotelBySeller(sellerID)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			app.fail(w, http.StatusNotFound, "create a shop first")
			return
		}
		app.serverError(w, err)
		return
	}

	orders, err := app.db.GetOrdersBySeller(sellerID)
	if err != nil {
		app.serverError(w, err)
		return
	}
	products, err := app.db.GetProductsBySeller(sellerID)
	if err != nil {
		app.serverError(w, err)
		return
	}

	stats := models.ComputeSellerStats(seller, hotel, orders, products, time.Now())
	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"stats":   stats,
	})
}

func (app *application) allOrders(w http.ResponseWriter, r *http.Request) {
	sellerID, err := app.sellerFromSession(r)
	if err != nil {
		app.fail(w, http.StatusUnauthorized, "please log in as a seller")
		return
	}
	orders, err := app.db.GetOrdersBySeller(sellerID)
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"orders":  orders,
	})
}

type orderStatusForm struct {
	OrderID     string `json:"order_id"`
	OrderStatus string `json:"order_status"`
}

func (app *application) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	sellerID, err := app.sellerFromSession(r)
	if err != nil {
		app.fail(w, http.StatusUnauthorized, "please log in as a seller")
		return
	}

	var form orderStatusForm
	if err := app.decodeJSON(r, &form); err != nil {
		app.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !models.ValidOrderStatus(form.OrderStatus) {
		app.fail(w, http.StatusBadRequest, "invalid order status")
		return
	}
	orderID, err := primitive.ObjectIDFromHex(form.OrderID)
	if err != nil {
		app.fail(w, http.StatusBadRequest, "invalid order id")
		return
	}

	if err := app.db.UpdateOrderStatus(orderID, sellerID, form.OrderStatus); err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			app.fail(w, http.StatusNotFound, "order not found or no permission")
			return
		}
		app.serverError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "order status updated",
	})
}
