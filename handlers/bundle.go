// File: handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Voice webhook endpoints.
	IncomingHandler     gin.HandlerFunc
	CollectOrderHandler gin.HandlerFunc
	AddDrinksHandler    gin.HandlerFunc
	AddDessertHandler   gin.HandlerFunc
	FinalConfirmHandler gin.HandlerFunc
	SelectTimeHandler   gin.HandlerFunc
	ConfirmTimeHandler  gin.HandlerFunc

	// Menu endpoints.
	ListMenuHandler       gin.HandlerFunc
	CreateMenuItemHandler gin.HandlerFunc
	UpdateMenuItemHandler gin.HandlerFunc
	DeleteMenuItemHandler gin.HandlerFunc

	// Order endpoints.
	ListOrdersHandler        gin.HandlerFunc
	GetOrderHandler          gin.HandlerFunc
	CreateOrderHandler       gin.HandlerFunc
	UpdateOrderStatusHandler gin.HandlerFunc
	DeleteOrderHandler       gin.HandlerFunc

	// User endpoints.
	RegisterUserHandler gin.HandlerFunc
	LoginHandler        gin.HandlerFunc
	MeHandler           gin.HandlerFunc
}
