package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestNextHotelID(t *testing.T) {
	assert.Equal(t, 1, NextHotelID(nil))
	assert.Equal(t, 3, NextHotelID([]HotelRef{
		{HotelID: 1, HotelName: "Ali Pizza House"},
		{HotelID: 2, HotelName: "Burger Hub"},
	}))
	// ids are max+1, not len+1
	assert.Equal(t, 6, NextHotelID([]HotelRef{{HotelID: 5}}))
}

func TestHotelNameTaken(t *testing.T) {
	hotels := []HotelRef{
		{HotelID: 1, HotelName: "Ali Pizza House"},
	}
	assert.True(t, HotelNameTaken(hotels, "Ali Pizza House"))
	assert.False(t, HotelNameTaken(hotels, "Burger Hub"))
	assert.False(t, HotelNameTaken(nil, "Ali Pizza House"))
}

func TestCreateShopSecondFreshCityGetsNextCityID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("second city", func(mt *mtest.T) {
		db := NewMongoDB(mt.DB)
		sellerID := primitive.NewObjectID()

		mt.AddMockResponses(
			// seller exists
			mtest.CreateCursorResponse(0, "dominos_system.sellers", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: sellerID},
				{Key: "name", Value: "Sana BBQ"},
			}),
			// seller has no shop yet
			mtest.CreateCursorResponse(0, "dominos_system.hotels", mtest.FirstBatch),
			// the requested city does not exist
			mtest.CreateCursorResponse(0, "dominos_system.locations", mtest.FirstBatch),
			// highest allocated city_id so far
			mtest.CreateCursorResponse(0, "dominos_system.locations", mtest.FirstBatch, bson.D{
				{Key: "city_id", Value: 1},
				{Key: "city_name", Value: "Lahore"},
			}),
			// location insert, hotel insert
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
		)

		hotel, ref, err := db.CreateShop(sellerID, "Karachi", "Sana BBQ House")
		assert.NoError(mt, err)
		assert.Equal(mt, 1, ref.HotelID)
		assert.Equal(mt, "Karachi", hotel.CityName)
		assert.Equal(mt, sellerID, hotel.SellerID)

		// the Location document written for the new city carries city_id 2
		var cityID int64 = -1
		for _, ev := range mt.GetAllStartedEvents() {
			if ev.CommandName != "insert" || ev.Command.Lookup("insert").StringValue() != "locations" {
				continue
			}
			docs, err := ev.Command.Lookup("documents").Array().Values()
			assert.NoError(mt, err)
			assert.Len(mt, docs, 1)
			cityID = docs[0].Document().Lookup("city_id").AsInt64()
		}
		assert.Equal(mt, int64(2), cityID)
	})

	mt.Run("first city ever", func(mt *mtest.T) {
		db := NewMongoDB(mt.DB)
		sellerID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "dominos_system.sellers", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: sellerID},
				{Key: "name", Value: "Ali Pizza"},
			}),
			mtest.CreateCursorResponse(0, "dominos_system.hotels", mtest.FirstBatch),
			mtest.CreateCursorResponse(0, "dominos_system.locations", mtest.FirstBatch),
			// no location documents at all
			mtest.CreateCursorResponse(0, "dominos_system.locations", mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
		)

		_, ref, err := db.CreateShop(sellerID, "Lahore", "Ali Pizza House")
		assert.NoError(mt, err)
		assert.Equal(mt, 1, ref.HotelID)

		var cityID int64 = -1
		for _, ev := range mt.GetAllStartedEvents() {
			if ev.CommandName != "insert" || ev.Command.Lookup("insert").StringValue() != "locations" {
				continue
			}
			docs, err := ev.Command.Lookup("documents").Array().Values()
			assert.NoError(mt, err)
			cityID = docs[0].Document().Lookup("city_id").AsInt64()
		}
		assert.Equal(mt, int64(1), cityID)
	})
}
