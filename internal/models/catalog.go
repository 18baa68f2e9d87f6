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

func (m *MongoDB) GetCategories(cityName, hotelName string) ([]*CategoryDoc, error) {
	var docs []*CategoryDoc
	filter := bson.M{"city_name": cityName, "hotel_name": hotelName}
	cur, err := m.Categories.Find(context.TODO(), filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(context.TODO())
	if err = cur.All(context.TODO(), &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []*CategoryDoc{}
	}
	return docs, nil
}

// EnsureSubcategory records a subcategory under its category for one
// (city, hotel) pair. $addToSet with upsert creates the document, the
// category key, or the list entry as needed in a single atomic write;
// an already-present subcategory is a no-op and insertion order is kept.
func (m *MongoDB) EnsureSubcategory(cityName, hotelName, category, subcategory string) error {
	filter := bson.M{"city_name": cityName, "hotel_name": hotelName}
	update := bson.M{"$addToSet": bson.M{"categories." + category: subcategory}}
	opts := options.Update().SetUpsert(true)
	_, err := m.Categories.UpdateOne(context.TODO(), filter, update, opts)
	return err
}

func (m *MongoDB) InsertProduct(p Product) (primitive.ObjectID, error) {
	res, err := m.Products.InsertOne(context.TODO(), p)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (m *MongoDB) GetProduct(id primitive.ObjectID) (*Product, error) {
	var p Product
	err := m.Products.FindOne(context.TODO(), bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoRecord
	}
	return &p, err
}

// GetSellerProduct fetches a product only if the given seller owns it, so
// a non-owner cannot tell a foreign product from a missing one.
func (m *MongoDB) GetSellerProduct(id, sellerID primitive.ObjectID) (*Product, error) {
	var p Product
	filter := bson.M{"_id": id, "seller_id": sellerID}
	err := m.Products.FindOne(context.TODO(), filter).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoRecord
	}
	return &p, err
}

func (m *MongoDB) GetProducts(cityName, hotelName string) ([]*Product, error) {
	return m.findProducts(bson.M{"city_name": cityName, "hotel_name": hotelName})
}

func (m *MongoDB) GetProductsBySeller(sellerID primitive.ObjectID) ([]*Product, error) {
	return m.findProducts(bson.M{"seller_id": sellerID})
}

func (m *MongoDB) findProducts(filter bson.M) ([]*Product, error) {
	var products []*Product
	cur, err := m.Products.Find(context.TODO(), filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(context.TODO())
	if err = cur.All(context.TODO(), &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []*Product{}
	}
	return products, nil
}

// UpdateProduct replaces the editable fields of a seller-owned product.
// A subcategory left dangling by the edit is not cleaned up.
func (m *MongoDB) UpdateProduct(id, sellerID primitive.ObjectID, p Product) error {
	filter := bson.M{"_id": id, "seller_id": sellerID}
	update := bson.M{"$set": bson.M{
		"category":      p.Category,
		"subcategory":   p.Subcategory,
		"product_name":  p.ProductName,
		"product_img":   p.ProductImg,
		"product_desc":  p.ProductDesc,
		"product_prize": p.ProductPrize,
	}}
	res, err := m.Products.UpdateOne(context.TODO(), filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoRecord
	}
	return nil
}

func (m *MongoDB) DeleteProduct(id, sellerID primitive.ObjectID) error {
	res, err := m.Products.DeleteOne(context.TODO(), bson.M{"_id": id, "seller_id": sellerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNoRecord
	}
	return nil
}

// MarkProductOrdered bumps the order counter and stamps last_ordered.
// Called after the order insert as a separate write; the order stands
// even if this follow-up fails.
func (m *MongoDB) MarkProductOrdered(id primitive.ObjectID, at time.Time) error {
	update := bson.M{
		"$inc": bson.M{"total_ordered": 1},
		"$set": bson.M{"last_ordered": at},
	}
	_, err := m.Products.UpdateOne(context.TODO(), bson.M{"_id": id}, update)
	return err
}
