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

// Diner logins are name-based and deliberately report a missing account
// and a wrong password with different errors. The original behaved this
// way and the distinction is kept rather than silently hardened.
var (
	ErrUserNotFound  = errors.New("repository: no account with this name")
	ErrWrongPassword = errors.New("repository: incorrect password")
)

type UserRepository struct {
	Collection *mongo.Collection
}

// Insert creates a diner account. No uniqueness is enforced on the name;
// duplicate names result in duplicate accounts, matching the original.
func (m *UserRepository) Insert(name, address, password string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Address:      address,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := m.Collection.InsertOne(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *UserRepository) Authenticate(name, password string) (*models.User, error) {
	var user models.User
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := m.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrWrongPassword
		}
		return nil, err
	}

	return &user, nil
}
