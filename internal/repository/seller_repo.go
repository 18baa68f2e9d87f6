package repository

import (
	"context"
	"errors"
	"time"

	"quickbite/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type SellerRepository struct {
	Collection *mongo.Collection
}

func (m *SellerRepository) Insert(name, email, phone, address, password string) (*models.Seller, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := m.Collection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return nil, models.ErrDuplicateEmail
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}

	seller := models.Seller{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		Address:      address,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if _, err := m.Collection.InsertOne(ctx, seller); err != nil {
		return nil, err
	}
	return &seller, nil
}

// Authenticate returns the same error for an unknown email and a wrong
// password so the login endpoint cannot be used to enumerate accounts.
func (m *SellerRepository) Authenticate(email, password string) (*models.Seller, error) {
	var seller models.Seller
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := m.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&seller)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(seller.PasswordHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	return &seller, nil
}

func (m *SellerRepository) Get(id primitive.ObjectID) (*models.Seller, error) {
	var seller models.Seller
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := m.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&seller)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNoRecord
	}
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

// Update rewrites the profile fields. A changed email is re-checked for
// uniqueness excluding the seller itself; the password is re-hashed only
// when a non-empty new one is supplied.
func (m *SellerRepository) Update(id primitive.ObjectID, name, email, phone, address, newPassword string) (*models.Seller, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	taken := m.Collection.FindOne(ctx, bson.M{"email": email, "_id": bson.M{"$ne": id}})
	if err := taken.Err(); err == nil {
		return nil, models.ErrDuplicateEmail
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	set := bson.M{
		"name":       name,
		"email":      email,
		"phone":      phone,
		"address":    address,
		"updated_at": time.Now(),
	}
	if newPassword != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), 12)
		if err != nil {
			return nil, err
		}
		set["password_hash"] = string(hashed)
	}

	res, err := m.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, models.ErrNoRecord
	}
	return m.Get(id)
}
