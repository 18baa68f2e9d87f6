package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrDuplicateHotel     = errors.New("models: hotel already exists in this city")
	ErrShopExists         = errors.New("models: seller already owns a shop")
	ErrNoShop             = errors.New("models: seller has no shop")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
)

type Seller struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone" json:"phone"`
	Address      string             `bson:"address" json:"address"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Address      string             `bson:"address" json:"address"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// HotelRef is one entry in a Location's embedded hotel list.
type HotelRef struct {
	HotelID   int    `bson:"hotel_id" json:"hotel_id"`
	HotelName string `bson:"hotel_name" json:"hotel_name"`
}

type Location struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	CityID   int                `bson:"city_id" json:"city_id"`
	CityName string             `bson:"city_name" json:"city_name"`
	Hotels   []HotelRef         `bson:"hotels" json:"hotels"`
}

// Hotel is the denormalized per-seller shop document, kept separately
// from the Location entry so the seller panel can look a shop up by
// seller_id without scanning every city.
type Hotel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	HotelName  string             `bson:"hotel_name" json:"hotel_name"`
	CityName   string             `bson:"city_name" json:"city_name"`
	SellerName string             `bson:"seller_name" json:"seller_name"`
	SellerID   primitive.ObjectID `bson:"seller_id" json:"seller_id"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

// CategoryDoc maps each category of one (city, hotel) pair to its ordered
// subcategory list. One document per pair; the map and its lists default
// to empty rather than being probed for existence at runtime.
type CategoryDoc struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"-"`
	CityName   string              `bson:"city_name" json:"city_name"`
	HotelName  string              `bson:"hotel_name" json:"hotel_name"`
	Categories map[string][]string `bson:"categories" json:"categories"`
}

type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CityName     string             `bson:"city_name" json:"city_name"`
	HotelName    string             `bson:"hotel_name" json:"hotel_name"`
	Category     string             `bson:"category" json:"category"`
	Subcategory  string             `bson:"subcategory" json:"subcategory"`
	ProductName  string             `bson:"product_name" json:"product_name"`
	ProductImg   string             `bson:"product_img" json:"product_img"`
	ProductDesc  string             `bson:"product_desc" json:"product_desc"`
	ProductPrize string             `bson:"product_prize" json:"product_prize"`
	SellerID     primitive.ObjectID `bson:"seller_id" json:"seller_id"`
	TotalOrdered int                `bson:"total_ordered" json:"total_ordered"`
	LastOrdered  *time.Time         `bson:"last_ordered" json:"last_ordered"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// Order snapshots product_name and product_img at creation time so later
// product edits never rewrite order history.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID          string             `bson:"user_id" json:"user_id"`
	ProductID       primitive.ObjectID `bson:"product_id" json:"product_id"`
	ProductName     string             `bson:"product_name" json:"product_name"`
	ProductImg      string             `bson:"product_img" json:"product_img"`
	Quantity        int                `bson:"quantity" json:"quantity"`
	TotalPrice      string             `bson:"total_price" json:"total_price"`
	DeliveryAddress string             `bson:"delivery_address" json:"delivery_address"`
	StoreID         string             `bson:"store_id" json:"store_id"`
	SellerID        primitive.ObjectID `bson:"seller_id" json:"seller_id"`
	HotelName       string             `bson:"hotel_name" json:"hotel_name"`
	CityName        string             `bson:"city_name" json:"city_name"`
	OrderStatus     string             `bson:"order_status" json:"order_status"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

// HomeBanner is the singleton promo document for the storefront.
type HomeBanner struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	HomeBanner    map[string]string  `bson:"home_banner" json:"home_banner"`
	DealsCarousel []string           `bson:"deals_carousel" json:"deals_carousel"`
}

type SellerBanner struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SellerID       primitive.ObjectID `bson:"seller_id" json:"seller_id"`
	HotelName      string             `bson:"hotel_name" json:"hotel_name"`
	CityName       string             `bson:"city_name" json:"city_name"`
	ImagesQuantity int                `bson:"images_quantity" json:"images_quantity"`
	ImagesName     []string           `bson:"images_name" json:"images_name"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

type CartItem struct {
	ProductID    primitive.ObjectID `bson:"product_id" json:"product_id"`
	ProductName  string             `bson:"product_name" json:"product_name"`
	ProductImg   string             `bson:"product_img" json:"product_img"`
	ProductPrize string             `bson:"product_prize" json:"product_prize"`
	SellerID     primitive.ObjectID `bson:"seller_id" json:"seller_id"`
	Quantity     int                `bson:"quantity" json:"quantity"`
}

type Cart struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID     string             `bson:"user_id" json:"user_id"`
	Items      []CartItem         `bson:"items" json:"items"`
	TotalPrice string             `bson:"total_price,omitempty" json:"total_price"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"-"`
}
