package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pizzavoice/models"
)

type fakeOrderRepo struct {
	created []*models.Order
	updated []string
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	f.created = append(f.created, order)
	return order, nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, storeID, orderID string) (*models.Order, error) {
	return nil, errors.New("not found")
}

func (f *fakeOrderRepo) GetByStoreID(ctx context.Context, storeID string) ([]models.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, storeID, orderID, status, cancellationReason, cancellationNotes string) (*models.Order, error) {
	f.updated = append(f.updated, status)
	return &models.Order{Status: status}, nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, storeID, orderID string) error {
	return nil
}

func validOrder() *models.Order {
	return &models.Order{
		Items:      []models.OrderItem{{MenuItem: primitive.NewObjectID(), Quantity: 2}},
		TotalPrice: 15,
		Slot:       76,
		OrderTime:  time.Now(),
		CustomerInfo: models.CustomerInfo{
			Name:  "Mario Rossi",
			Phone: "+39 340 123 4567",
		},
	}
}

func TestCreateOrderStampsStoreID(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := &DefaultOrderService{Repo: repo}

	order, err := svc.CreateOrder(context.Background(), "1234", validOrder())
	require.NoError(t, err)
	assert.Equal(t, "1234", order.StoreID)
	require.Len(t, repo.created, 1)
}

func TestCreateOrderRejectsIncompleteOrders(t *testing.T) {
	svc := &DefaultOrderService{Repo: &fakeOrderRepo{}}
	ctx := context.Background()

	noItems := validOrder()
	noItems.Items = nil
	_, err := svc.CreateOrder(ctx, "1234", noItems)
	assert.ErrorIs(t, err, ErrInvalidOrder)

	noSlot := validOrder()
	noSlot.Slot = 0
	_, err = svc.CreateOrder(ctx, "1234", noSlot)
	assert.ErrorIs(t, err, ErrInvalidOrder)

	badItem := validOrder()
	badItem.Items[0].Quantity = 0
	_, err = svc.CreateOrder(ctx, "1234", badItem)
	assert.ErrorIs(t, err, ErrInvalidOrder)

	noName := validOrder()
	noName.CustomerInfo.Name = ""
	_, err = svc.CreateOrder(ctx, "1234", noName)
	assert.Error(t, err)
}

func TestUpdateOrderStatusValidation(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := &DefaultOrderService{Repo: repo}
	ctx := context.Background()

	_, err := svc.UpdateOrderStatus(ctx, "1234", "abc", "shipped", "", "")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateOrderStatus(ctx, "1234", "abc", models.OrderStatusCancelled, "", "")
	assert.ErrorIs(t, err, ErrCancellationReasonReq)

	updated, err := svc.UpdateOrderStatus(ctx, "1234", "abc", models.OrderStatusReady, "", "")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusReady, updated.Status)
	assert.Equal(t, []string{models.OrderStatusReady}, repo.updated)
}
