package models

import (
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDB struct {
	Locations     *mongo.Collection
	Sellers       *mongo.Collection
	Hotels        *mongo.Collection
	Categories    *mongo.Collection
	Products      *mongo.Collection
	Orders        *mongo.Collection
	Banners       *mongo.Collection
	SellerBanners *mongo.Collection
	Users         *mongo.Collection
	Carts         *mongo.Collection
}

func NewMongoDB(db *mongo.Database) *MongoDB {
	return &MongoDB{
		Locations:     db.Collection("locations"),
		Sellers:       db.Collection("sellers"),
		Hotels:        db.Collection("hotels"),
		Categories:    db.Collection("categories"),
		Products:      db.Collection("products"),
		Orders:        db.Collection("orders"),
		Banners:       db.Collection("banners"),
		SellerBanners: db.Collection("seller_banners"),
		Users:         db.Collection("users"),
		Carts:         db.Collection("carts"),
	}
}
