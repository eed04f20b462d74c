package userRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"fixflow/database"
	"fixflow/models"
)

// MongoUserRepo is the MongoDB-backed UserRepository.
type MongoUserRepo struct {
	coll *mongo.Collection
}

func NewMongoUserRepo() *MongoUserRepo {
	return &MongoUserRepo{coll: database.Collection("users")}
}

func (repo *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

func (repo *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	return &user, nil
}

func (repo *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	if err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	return &user, nil
}

func (repo *MongoUserRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("error deleting user %s: %w", id, err)
	}
	return nil
}
