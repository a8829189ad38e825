package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jxchen21/tastebuds-backend/internal/service"
	"github.com/jxchen21/tastebuds-backend/internal/types"
)

// ShoppingHandler serves the aggregated shopping list.
type ShoppingHandler struct {
	shoppingService *service.ShoppingService
}

// NewShoppingHandler creates a new ShoppingHandler.
func NewShoppingHandler(shoppingService *service.ShoppingService) *ShoppingHandler {
	return &ShoppingHandler{shoppingService: shoppingService}
}

// GetList returns the reconciled shopping list.
func (h *ShoppingHandler) GetList(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	list, err := h.shoppingService.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shopping list"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// AddItem adds a named item; adding an existing name is reported, not
// rejected.
func (h *ShoppingHandler) AddItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.ShoppingAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, created, err := h.shoppingService.AddItem(c.Request.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmptyItemName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item"})
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{
			"message": "Item already on the list",
			"item":    item,
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// RemoveItem deletes an item owned by the caller.
func (h *ShoppingHandler) RemoveItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	if err := h.shoppingService.RemoveItem(c.Request.Context(), userID, itemID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}
