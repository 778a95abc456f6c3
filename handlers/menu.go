// File: handlers/menu.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pizzavoice/models"
	menuSvc "pizzavoice/services/menu"
	"pizzavoice/utils"
)

type MenuHandler struct {
	Svc menuSvc.MenuService
}

func NewMenuHandler(svc menuSvc.MenuService) *MenuHandler {
	return &MenuHandler{Svc: svc}
}

// ListMenuHandler handles GET /api/menu.
func (h *MenuHandler) ListMenuHandler(c *gin.Context) {
	storeID := c.GetString("storeID")
	items, err := h.Svc.ListMenu(c.Request.Context(), storeID)
	if err != nil {
		utils.GetLogger().Error("Failed to list menu", zap.String("storeId", storeID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateMenuItemHandler handles POST /api/menu.
func (h *MenuHandler) CreateMenuItemHandler(c *gin.Context) {
	storeID := c.GetString("storeID")

	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Svc.CreateMenuItem(c.Request.Context(), storeID, &item)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateMenuItemHandler handles PUT /api/menu/:id.
func (h *MenuHandler) UpdateMenuItemHandler(c *gin.Context) {
	storeID := c.GetString("storeID")
	itemID := c.Param("id")

	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Svc.UpdateMenuItem(c.Request.Context(), storeID, itemID, update)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteMenuItemHandler handles DELETE /api/menu/:id.
func (h *MenuHandler) DeleteMenuItemHandler(c *gin.Context) {
	storeID := c.GetString("storeID")
	itemID := c.Param("id")

	if err := h.Svc.DeleteMenuItem(c.Request.Context(), storeID, itemID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
