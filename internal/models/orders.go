package models

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderStatuses are the recognized order_status values. Any status may
// follow any other; there is no transition graph.
var OrderStatuses = []string{
	"pending",
	"confirmed",
	"preparing",
	"out_for_delivery",
	"delivered",
	"cancelled",
}

func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ResolveStore finds the hotel an order is placed against: first treating
// store_id as a Hotel document id, then falling back to the product's own
// (city, hotel) pair. The client may send a seller identifier as store_id,
// which never matches a Hotel id, so the fallback is load-bearing.
func (m *MongoDB) ResolveStore(storeID string, p *Product) (*Hotel, error) {
	if oid, err := primitive.ObjectIDFromHex(storeID); err == nil {
		h, err := m.GetHotel(oid)
		if err == nil {
			return h, nil
		}
		if !errors.Is(err, ErrNoRecord) {
			return nil, err
		}
	}
	return m.GetHotelByPlace(p.CityName, p.HotelName)
}

func (m *MongoDB) InsertOrder(o Order) error {
	_, err := m.Orders.InsertOne(context.TODO(), o)
	return err
}

func (m *MongoDB) GetOrdersBySeller(sellerID primitive.ObjectID) ([]*Order, error) {
	var orders []*Order
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := m.Orders.Find(context.TODO(), bson.M{"seller_id": sellerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(context.TODO())
	if err = cur.All(context.TODO(), &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []*Order{}
	}
	return orders, nil
}

// UpdateOrderStatus sets the status of an order owned by the given seller.
// A non-owner gets ErrNoRecord, indistinguishable from a missing order.
func (m *MongoDB) UpdateOrderStatus(orderID, sellerID primitive.ObjectID, status string) error {
	filter := bson.M{"_id": orderID, "seller_id": sellerID}
	update := bson.M{"$set": bson.M{"order_status": status}}
	res, err := m.Orders.UpdateOne(context.TODO(), filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoRecord
	}
	return nil
}
