// File: database/repository/menu/interface.go
package menuRepo

import (
	"context"

	"pizzavoice/database"
	"pizzavoice/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type MenuRepository interface {
	Create(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error)
	GetByStoreID(ctx context.Context, storeID string) ([]models.MenuItem, error)
	Update(ctx context.Context, storeID, itemID string, update map[string]interface{}) (*models.MenuItem, error)
	Delete(ctx context.Context, storeID, itemID string) error
}

type mongoMenuRepo struct {
	coll *mongo.Collection
}

// NewMongoMenuRepo constructs a new MongoDB MenuRepository.
func NewMongoMenuRepo() MenuRepository {
	db := database.MongoClient.Database("pizzavoice")
	return &mongoMenuRepo{
		coll: db.Collection("menus"),
	}
}
