package order

import (
	"context"
	"errors"

	"pizzavoice/models"
)

var (
	ErrInvalidOrder          = errors.New("missing or invalid order data")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrCancellationReasonReq = errors.New("cancellation reason is required")
)

func (s *DefaultOrderService) ListOrders(ctx context.Context, storeID string) ([]models.Order, error) {
	return s.Repo.GetByStoreID(ctx, storeID)
}

func (s *DefaultOrderService) GetOrder(ctx context.Context, storeID, orderID string) (*models.Order, error) {
	return s.Repo.GetByID(ctx, storeID, orderID)
}

func (s *DefaultOrderService) CreateOrder(ctx context.Context, storeID string, order *models.Order) (*models.Order, error) {
	if len(order.Items) == 0 || order.TotalPrice == 0 || order.Slot == 0 {
		return nil, ErrInvalidOrder
	}
	if order.CustomerInfo.Name == "" {
		return nil, errors.New("customer name is required")
	}
	for _, item := range order.Items {
		if item.MenuItem.IsZero() || item.Quantity < 1 {
			return nil, ErrInvalidOrder
		}
	}
	order.StoreID = storeID
	return s.Repo.Create(ctx, order)
}

func (s *DefaultOrderService) UpdateOrderStatus(ctx context.Context, storeID, orderID, status, cancellationReason, cancellationNotes string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	if status == models.OrderStatusCancelled && cancellationReason == "" {
		return nil, ErrCancellationReasonReq
	}
	return s.Repo.UpdateStatus(ctx, storeID, orderID, status, cancellationReason, cancellationNotes)
}

func (s *DefaultOrderService) DeleteOrder(ctx context.Context, storeID, orderID string) error {
	return s.Repo.Delete(ctx, storeID, orderID)
}
