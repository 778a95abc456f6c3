package menu

import (
	"context"
	"errors"

	"pizzavoice/models"
)

func (s *DefaultMenuService) ListMenu(ctx context.Context, storeID string) ([]models.MenuItem, error) {
	return s.Repo.GetByStoreID(ctx, storeID)
}

func (s *DefaultMenuService) CreateMenuItem(ctx context.Context, storeID string, item *models.MenuItem) (*models.MenuItem, error) {
	if item.Name == "" || item.Price == 0 {
		return nil, errors.New("name and price are required")
	}
	item.StoreID = storeID
	created, err := s.Repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	// The phone pipeline reads menus through the cache.
	s.Cache.Invalidate(ctx, storeID)
	return created, nil
}

func (s *DefaultMenuService) UpdateMenuItem(ctx context.Context, storeID, itemID string, update map[string]interface{}) (*models.MenuItem, error) {
	updated, err := s.Repo.Update(ctx, storeID, itemID, update)
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx, storeID)
	return updated, nil
}

func (s *DefaultMenuService) DeleteMenuItem(ctx context.Context, storeID, itemID string) error {
	if err := s.Repo.Delete(ctx, storeID, itemID); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, storeID)
	return nil
}
