package users

import (
	"context"
	"errors"
	"strings"
	"time"

	DB "Backend-VendorRisk/src/database"
	"Backend-VendorRisk/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// CreateUser registers a backoffice account with a bcrypt-hashed password.
func CreateUser(ctx context.Context, user *models.User, password string) (*models.User, error) {
	user.Email = strings.ToLower(user.Email)

	count, err := DB.UserCollection.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user.ID = primitive.NewObjectID()
	user.Password = hash
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := DB.UserCollection.InsertOne(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// AuthenticateUser checks credentials against the users collection.
func AuthenticateUser(ctx context.Context, email, password string) (*models.User, error) {
	var dbUser models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	return &dbUser, nil
}

// HashPassword แปลงรหัสผ่านเป็น bcrypt hash
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}
