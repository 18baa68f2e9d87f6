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

func (m *MongoDB) GetLocations() ([]*Location, error) {
	var locations []*Location
	opts := options.Find().SetProjection(bson.M{"city_name": 1, "hotels": 1, "_id": 0})
	cur, err := m.Locations.Find(context.TODO(), bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(context.TODO())
	if err = cur.All(context.TODO(), &locations); err != nil {
		return nil, err
	}
	if locations == nil {
		locations = []*Location{}
	}
	return locations, nil
}

func (m *MongoDB) GetSeller(id primitive.ObjectID) (*Seller, error) {
	var s Seller
	err := m.Sellers.FindOne(context.TODO(), bson.M{"_id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoRecord
	}
	return &s, err
}

func (m *MongoDB) GetHotelBySeller(sellerID primitive.ObjectID) (*Hotel, error) {
	var h Hotel
	err := m.Hotels.FindOne(context.TODO(), bson.M{"seller_id": sellerID}).Decode(&h)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoRecord
	}
	return &h, err
}

func (m *MongoDB) GetHotel(id primitive.ObjectID) (*Hotel, error) {
	var h Hotel
	err := m.Hotels.FindOne(context.TODO(), bson.M{"_id": id}).Decode(&h)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoRecord
	}
	return &h, err
}

func (m *MongoDB) GetHotelByPlace(cityName, hotelName string) (*Hotel, error) {
	var h Hotel
	filter := bson.M{"city_name": cityName, "hotel_name": hotelName}
	err := m.Hotels.FindOne(context.TODO(), filter).Decode(&h)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoRecord
	}
	return &h, err
}

// nextCityID computes max(city_id)+1 from the highest allocated id, or 1
// when no city exists yet. Allocation must not go through GetLocations:
// its storefront projection strips city_id.
func (m *MongoDB) nextCityID() (int, error) {
	var loc Location
	opts := options.FindOne().SetSort(bson.M{"city_id": -1})
	err := m.Locations.FindOne(context.TODO(), bson.M{}, opts).Decode(&loc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return loc.CityID + 1, nil
}

// NextHotelID returns max(hotel_id)+1 within one city's hotel list, or 1
// for a fresh city.
func NextHotelID(hotels []HotelRef) int {
	max := 0
	for _, h := range hotels {
		if h.HotelID > max {
			max = h.HotelID
		}
	}
	return max + 1
}

func HotelNameTaken(hotels []HotelRef, name string) bool {
	for _, h := range hotels {
		if h.HotelName == name {
			return true
		}
	}
	return false
}

// CreateShop registers a seller's single storefront: it adds the hotel to
// the city's embedded list (creating the Location on first use, city_id and
// hotel_id assigned as max+1) and inserts the denormalized Hotel document
// for reverse lookup by seller. The two writes are independent; the second
// can fail after the first succeeds. The read-then-insert branch for a new
// city is not serialized against concurrent creates for the same city.
func (m *MongoDB) CreateShop(sellerID primitive.ObjectID, cityName, hotelName string) (*Hotel, *HotelRef, error) {
	seller, err := m.GetSeller(sellerID)
	if err != nil {
		return nil, nil, err
	}

	if _, err := m.GetHotelBySeller(sellerID); err == nil {
		return nil, nil, ErrShopExists
	} else if !errors.Is(err, ErrNoRecord) {
		return nil, nil, err
	}

	var ref HotelRef
	var loc Location
	err = m.Locations.FindOne(context.TODO(), bson.M{"city_name": cityName}).Decode(&loc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		cityID, err := m.nextCityID()
		if err != nil {
			return nil, nil, err
		}
		ref = HotelRef{HotelID: 1, HotelName: hotelName}
		newLoc := Location{
			CityID:   cityID,
			CityName: cityName,
			Hotels:   []HotelRef{ref},
		}
		if _, err := m.Locations.InsertOne(context.TODO(), newLoc); err != nil {
			return nil, nil, err
		}
	case err != nil:
		return nil, nil, err
	default:
		if HotelNameTaken(loc.Hotels, hotelName) {
			return nil, nil, ErrDuplicateHotel
		}
		ref = HotelRef{HotelID: NextHotelID(loc.Hotels), HotelName: hotelName}
		update := bson.M{"$push": bson.M{"hotels": ref}}
		if _, err := m.Locations.UpdateOne(context.TODO(), bson.M{"_id": loc.ID}, update); err != nil {
			return nil, nil, err
		}
	}

	hotel := Hotel{
		ID:         primitive.NewObjectID(),
		HotelName:  hotelName,
		CityName:   cityName,
		SellerName: seller.Name,
		SellerID:   sellerID,
		CreatedAt:  time.Now(),
	}
	if _, err := m.Hotels.InsertOne(context.TODO(), hotel); err != nil {
		return nil, nil, err
	}
	return &hotel, &ref, nil
}
