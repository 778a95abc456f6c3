// File: services/voice/finalizer.go
package voice

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pizzavoice/models"
)

// PhoneCustomerName is used for every phone-originated order: the dialogue
// never asks for a name.
const PhoneCustomerName = "Cliente telefonico"

// Finalize maps the accumulated call state into an order document and
// persists it. The total price stays at zero: menu price aggregation is a
// known gap of the phone pipeline, orders are priced at the counter.
func (s *CallFlowService) Finalize(ctx context.Context, st models.CallState, slot int) (*models.Order, error) {
	items := make([]models.OrderItem, 0, len(st.Items))
	for _, callItem := range st.Items {
		ref, err := primitive.ObjectIDFromHex(callItem.MenuItemID)
		if err != nil {
			ref = primitive.NilObjectID
		}
		quantity := callItem.Quantity
		if quantity < 1 {
			quantity = 1
		}
		items = append(items, models.OrderItem{
			MenuItem: ref,
			Quantity: quantity,
		})
	}

	notes := "Pizze non tagliate"
	if st.Cutting {
		notes = "Pizze tagliate a spicchi"
	}

	phone := st.Phone
	if phone == "" {
		phone = "Anonimo"
	}

	order := &models.Order{
		StoreID:    st.StoreID,
		Items:      items,
		TotalPrice: 0,
		Status:     models.OrderStatusPending,
		Slot:       slot,
		OrderTime:  time.Now(),
		CustomerInfo: models.CustomerInfo{
			Name:  PhoneCustomerName,
			Phone: phone,
		},
		Notes: notes,
	}

	return s.OrderRepo.Create(ctx, order)
}
