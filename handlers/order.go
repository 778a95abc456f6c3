// File: handlers/order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pizzavoice/models"
	orderSvc "pizzavoice/services/order"
	"pizzavoice/utils"
)

type OrderHandler struct {
	Svc orderSvc.OrderService
}

func NewOrderHandler(svc orderSvc.OrderService) *OrderHandler {
	return &OrderHandler{Svc: svc}
}

// ListOrdersHandler handles GET /api/orders.
func (h *OrderHandler) ListOrdersHandler(c *gin.Context) {
	storeID := c.GetString("storeID")
	orders, err := h.Svc.ListOrders(c.Request.Context(), storeID)
	if err != nil {
		utils.GetLogger().Error("Failed to list orders", zap.String("storeId", storeID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrderHandler handles GET /api/orders/:id.
func (h *OrderHandler) GetOrderHandler(c *gin.Context) {
	storeID := c.GetString("storeID")
	order, err := h.Svc.GetOrder(c.Request.Context(), storeID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// CreateOrderHandler handles POST /api/orders.
func (h *OrderHandler) CreateOrderHandler(c *gin.Context) {
	storeID := c.GetString("storeID")

	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Svc.CreateOrder(c.Request.Context(), storeID, &order)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateOrderStatusHandler handles PATCH /api/orders/:id/status.
func (h *OrderHandler) UpdateOrderStatusHandler(c *gin.Context) {
	storeID := c.GetString("storeID")

	var req struct {
		Status             string `json:"status" binding:"required"`
		CancellationReason string `json:"cancellationReason"`
		CancellationNotes  string `json:"cancellationNotes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Svc.UpdateOrderStatus(c.Request.Context(), storeID, c.Param("id"),
		req.Status, req.CancellationReason, req.CancellationNotes)
	if err != nil {
		switch err {
		case orderSvc.ErrInvalidStatus, orderSvc.ErrCancellationReasonReq:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteOrderHandler handles DELETE /api/orders/:id.
func (h *OrderHandler) DeleteOrderHandler(c *gin.Context) {
	storeID := c.GetString("storeID")
	if err := h.Svc.DeleteOrder(c.Request.Context(), storeID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}
