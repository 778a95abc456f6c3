package menu

import (
	"context"

	menuRepo "pizzavoice/database/repository/menu"
	"pizzavoice/models"
	voice "pizzavoice/services/voice"
)

type MenuService interface {
	ListMenu(ctx context.Context, storeID string) ([]models.MenuItem, error)
	CreateMenuItem(ctx context.Context, storeID string, item *models.MenuItem) (*models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, storeID, itemID string, update map[string]interface{}) (*models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, storeID, itemID string) error
}

// DefaultMenuService is the production implementation.
type DefaultMenuService struct {
	Repo  menuRepo.MenuRepository
	Cache *voice.MenuCache
}
