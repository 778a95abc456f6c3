// File: database/repository/user/interface.go
package userRepo

import (
	"context"

	"pizzavoice/database"
	"pizzavoice/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	db := database.MongoClient.Database("pizzavoice")
	return &mongoUserRepo{
		coll: db.Collection("users"),
	}
}
