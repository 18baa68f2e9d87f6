package main

import (
	"net/http"
)

func (app *application) getLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := app.db.GetLocations()
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"locations": locations,
	})
}

// homeBanner and dealsCarousel mirror the original wire shape: the banner
// map and the carousel list are returned bare, without the envelope.
func (app *application) homeBanner(w http.ResponseWriter, r *http.Request) {
	banner, err := app.db.GetHomeBanner()
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, banner)
}

func (app *application) dealsCarousel(w http.ResponseWriter, r *http.Request) {
	deals, err := app.db.GetDealsCarousel()
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, deals)
}

type placeFilter struct {
	CityName  string `json:"city_name"`
	HotelName string `json:"hotel_name"`
}

func (app *application) getCategories(w http.ResponseWriter, r *http.Request) {
	var f placeFilter
	if err := app.decodeJSON(r, &f); err != nil || f.CityName == "" || f.HotelName == "" {
		app.fail(w, http.StatusBadRequest, "city_name and hotel_name are required")
		return
	}
	categories, err := app.db.GetCategories(f.CityName, f.HotelName)
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"categories": categories,
	})
}

func (app *application) getProducts(w http.ResponseWriter, r *http.Request) {
	var f placeFilter
	if err := app.decodeJSON(r, &f); err != nil || f.CityName == "" || f.HotelName == "" {
		app.fail(w, http.StatusBadRequest, "city_name and hotel_name are required")
		return
	}
	products, err := app.db.GetProducts(f.CityName, f.HotelName)
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"products": products,
	})
}

func (app *application) getBannersByLocation(w http.ResponseWriter, r *http.Request) {
	var f placeFilter
	if err := app.decodeJSON(r, &f); err != nil || f.CityName == "" || f.HotelName == "" {
		app.fail(w, http.StatusBadRequest, "city_name and hotel_name are required")
		return
	}
	banners, err := app.db.GetBannersByLocation(f.CityName, f.HotelName)
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"banners": banners,
	})
}
