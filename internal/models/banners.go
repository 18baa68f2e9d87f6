package models

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetHomeBanner reads the singleton storefront promo document. A missing
// document yields an empty banner set, not an error.
func (m *MongoDB) GetHomeBanner() (map[string]string, error) {
	var doc HomeBanner
	opts := options.FindOne().SetProjection(bson.M{"home_banner": 1, "_id": 0})
	err := m.Banners.FindOne(context.TODO(), bson.M{}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	if doc.HomeBanner == nil {
		doc.HomeBanner = map[string]string{}
	}
	return doc.HomeBanner, nil
}

func (m *MongoDB) GetDealsCarousel() ([]string, error) {
	var doc HomeBanner
	opts := options.FindOne().SetProjection(bson.M{"deals_carousel": 1, "_id": 0})
	err := m.Banners.FindOne(context.TODO(), bson.M{}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	if doc.DealsCarousel == nil {
		doc.DealsCarousel = []string{}
	}
	return doc.DealsCarousel, nil
}

// UpsertSellerBanner replaces a seller's banner set, denormalizing the
// shop's city and hotel for the storefront's location-scoped lookup.
func (m *MongoDB) UpsertSellerBanner(b SellerBanner) error {
	filter := bson.M{"seller_id": b.SellerID}
	update := bson.M{"$set": bson.M{
		"seller_id":       b.SellerID,
		"hotel_name":      b.HotelName,
		"city_name":       b.CityName,
		"images_quantity": b.ImagesQuantity,
		"images_name":     b.ImagesName,
		"updated_at":      time.Now(),
	}}
	opts := options.Update().SetUpsert(true)
	_, err := m.SellerBanners.UpdateOne(context.TODO(), filter, update, opts)
	return err
}

func (m *MongoDB) GetSellerBanner(sellerID primitive.ObjectID) (*SellerBanner, error) {
	var b SellerBanner
	err := m.SellerBanners.FindOne(context.TODO(), bson.M{"seller_id": sellerID}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoRecord
	}
	return &b, err
}

func (m *MongoDB) GetBannersByLocation(cityName, hotelName string) ([]*SellerBanner, error) {
	var banners []*SellerBanner
	filter := bson.M{"city_name": cityName, "hotel_name": hotelName}
	cur, err := m.SellerBanners.Find(context.TODO(), filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(context.TODO())
	if err = cur.All(context.TODO(), &banners); err != nil {
		return nil, err
	}
	if banners == nil {
		banners = []*SellerBanner{}
	}
	return banners, nil
}
