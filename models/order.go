package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order status values.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Cancellation reasons.
const (
	CancellationCustomerRequest = "customer_request"
	CancellationOutOfStock      = "out_of_stock"
	CancellationStoreClosed     = "store_closed"
	CancellationTechnicalIssues = "technical_issues"
	CancellationOther           = "other"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// CustomerInfo identifies the customer attached to an order.
type CustomerInfo struct {
	Name    string `bson:"name" json:"name"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
}

// OrderItem is a menu item reference with a quantity inside an order.
type OrderItem struct {
	MenuItem primitive.ObjectID `bson:"menuItem" json:"menuItem"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Notes    string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Order is a persisted customer order, scoped to a store.
type Order struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StoreID            string             `bson:"storeId" json:"storeId"`
	Items              []OrderItem        `bson:"items" json:"items"`
	TotalPrice         float64            `bson:"totalPrice" json:"totalPrice"`
	Status             string             `bson:"status" json:"status"`
	Slot               int                `bson:"slot" json:"slot"`
	OrderTime          time.Time          `bson:"orderTime" json:"orderTime"`
	CustomerInfo       CustomerInfo       `bson:"customerInfo" json:"customerInfo"`
	Notes              string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CancellationReason string             `bson:"cancellationReason,omitempty" json:"cancellationReason,omitempty"`
	CancellationNotes  string             `bson:"cancellationNotes,omitempty" json:"cancellationNotes,omitempty"`
}
