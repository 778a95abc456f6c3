// File: database/repository/order/interface.go
package orderRepo

import (
	"context"

	"pizzavoice/database"
	"pizzavoice/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	GetByID(ctx context.Context, storeID, orderID string) (*models.Order, error)
	GetByStoreID(ctx context.Context, storeID string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, storeID, orderID, status, cancellationReason, cancellationNotes string) (*models.Order, error)
	Delete(ctx context.Context, storeID, orderID string) error
}

type mongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo constructs a new MongoDB OrderRepository.
func NewMongoOrderRepo() OrderRepository {
	db := database.MongoClient.Database("pizzavoice")
	return &mongoOrderRepo{
		coll: db.Collection("orders"),
	}
}
