package order

import (
	"context"

	orderRepo "pizzavoice/database/repository/order"
	"pizzavoice/models"
)

type OrderService interface {
	ListOrders(ctx context.Context, storeID string) ([]models.Order, error)
	GetOrder(ctx context.Context, storeID, orderID string) (*models.Order, error)
	CreateOrder(ctx context.Context, storeID string, order *models.Order) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, storeID, orderID, status, cancellationReason, cancellationNotes string) (*models.Order, error)
	DeleteOrder(ctx context.Context, storeID, orderID string) error
}

// DefaultOrderService is the production implementation.
type DefaultOrderService struct {
	Repo orderRepo.OrderRepository
}
