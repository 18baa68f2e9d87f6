package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetCart returns the user's cart with total_price recomputed from the
// item snapshots. A user with no cart document gets an empty cart.
func (m *MongoDB) GetCart(userID string) (*Cart, error) {
	var c Cart
	err := m.Carts.FindOne(context.TODO(), bson.M{"user_id": userID}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &Cart{UserID: userID, Items: []CartItem{}, TotalPrice: "$0.00"}, nil
	}
	if err != nil {
		return nil, err
	}
	if c.Items == nil {
		c.Items = []CartItem{}
	}
	c.TotalPrice = CartTotal(c.Items)
	return &c, nil
}

// CartTotal sums the parseable item prices weighted by quantity and
// formats the result as a dollar-tagged string, matching product_prize.
func CartTotal(items []CartItem) string {
	var total float64
	for _, it := range items {
		if v, ok := ParsePrice(it.ProductPrize); ok {
			total += v * float64(it.Quantity)
		}
	}
	return fmt.Sprintf("$%.2f", total)
}

// SetCartItem sets the quantity of a product in the user's cart, adding
// the item with a fresh product snapshot when it is not there yet.
func (m *MongoDB) SetCartItem(userID string, productID primitive.ObjectID, quantity int) error {
	filter := bson.M{"user_id": userID, "items.product_id": productID}
	update := bson.M{"$set": bson.M{
		"items.$.quantity": quantity,
		"updated_at":       time.Now(),
	}}
	res, err := m.Carts.UpdateOne(context.TODO(), filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	p, err := m.GetProduct(productID)
	if err != nil {
		return err
	}
	item := CartItem{
		ProductID:    p.ID,
		ProductName:  p.ProductName,
		ProductImg:   p.ProductImg,
		ProductPrize: p.ProductPrize,
		SellerID:     p.SellerID,
		Quantity:     quantity,
	}
	push := bson.M{
		"$push": bson.M{"items": item},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	opts := options.Update().SetUpsert(true)
	_, err = m.Carts.UpdateOne(context.TODO(), bson.M{"user_id": userID}, push, opts)
	return err
}

func (m *MongoDB) RemoveCartItem(userID string, productID primitive.ObjectID) error {
	filter := bson.M{"user_id": userID}
	update := bson.M{
		"$pull": bson.M{"items": bson.M{"product_id": productID}},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	_, err := m.Carts.UpdateOne(context.TODO(), filter, update)
	return err
}

func (m *MongoDB) ClearCart(userID string) error {
	_, err := m.Carts.DeleteOne(context.TODO(), bson.M{"user_id": userID})
	return err
}
