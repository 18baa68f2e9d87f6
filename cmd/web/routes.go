package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/rs/cors"
)

func (app *application) routes() http.Handler {
	mux := pat.New()

	// storefront
	mux.Get("/get_locations", http.HandlerFunc(app.getLocations))
	mux.Get("/home_banner", http.HandlerFunc(app.homeBanner))
	mux.Get("/deals_carousel", http.HandlerFunc(app.dealsCarousel))
	mux.Post("/get_categories", http.HandlerFunc(app.getCategories))
	mux.Post("/get_products", http.HandlerFunc(app.getProducts))
	mux.Post("/get_banners_by_location", http.HandlerFunc(app.getBannersByLocation))
	mux.Post("/create_order", http.HandlerFunc(app.createOrder))

	// diners
	mux.Post("/user/register", http.HandlerFunc(app.userRegister))
	mux.Post("/user/login", http.HandlerFunc(app.userLogin))
	mux.Post("/user/get_cart", http.HandlerFunc(app.getCart))
	mux.Post("/user/update_cart", http.HandlerFunc(app.updateCart))
	mux.Post("/user/remove_from_cart", http.HandlerFunc(app.removeFromCart))

	// seller accounts
	mux.Post("/seller_account/register", http.HandlerFunc(app.sellerRegister))
	mux.Post("/seller_account/login", http.HandlerFunc(app.sellerLogin))
	mux.Get("/seller_account/logout", http.HandlerFunc(app.sellerLogout))
	mux.Get("/seller_account/edit_seller_profile", app.requireSeller(app.sellerProfile))
	mux.Post("/seller_account/edit_seller_profile", app.requireSeller(app.editSellerProfile))

	// seller panel
	mux.Post("/make_shop", app.requireSeller(app.makeShop))
	mux.Get("/check_seller_hotel", app.requireSeller(app.checkSellerHotel))
	mux.Post("/check_seller_hotel", app.requireSeller(app.checkSellerHotel))
	mux.Post("/add_product", app.requireSeller(app.addProduct))
	mux.Get("/check_seller_products", app.requireSeller(app.checkSellerProducts))
	mux.Post("/check_seller_products", app.requireSeller(app.checkSellerProducts))
	mux.Get("/get_seller_products", app.requireSeller(app.getSellerProducts))
	mux.Post("/get_seller_products", app.requireSeller(app.getSellerProducts))
	mux.Get("/product_edit/:id", app.requireSeller(app.productEditGet))
	mux.Post("/product_edit/:id", app.requireSeller(app.productEditPost))
	mux.Del("/product_delete/:id", app.requireSeller(app.productDelete))
	mux.Post("/seller_account/upload_images", app.requireSeller(app.uploadImages))
	mux.Post("/seller_account/update_banner", app.requireSeller(app.updateBanner))
	mux.Get("/seller_account/get_banners", app.requireSeller(app.getBanners))
	mux.Get("/seller_account/stats", app.requireSeller(app.sellerStats))
	mux.Get("/all_orders", app.requireSeller(app.allOrders))
	mux.Post("/update_order_status", app.requireSeller(app.updateOrderStatus))

	mux.Get("/uploads/:file", http.HandlerFunc(app.serveUpload))

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{app.corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Authorization"},
		AllowCredentials: true,
	})

	return app.logRequest(app.recoverPanic(c.Handler(app.session.LoadAndSave(mux))))
}
