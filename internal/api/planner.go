package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jxchen21/tastebuds-backend/internal/models"
	"github.com/jxchen21/tastebuds-backend/internal/service"
	"github.com/jxchen21/tastebuds-backend/internal/types"
)

// PlannerHandler serves the weekly meal-plan grid.
type PlannerHandler struct {
	plannerService *service.PlannerService
}

// NewPlannerHandler creates a new PlannerHandler.
func NewPlannerHandler(plannerService *service.PlannerService) *PlannerHandler {
	return &PlannerHandler{plannerService: plannerService}
}

// GetGrid returns the full 7x4 planner, empty cells included.
func (h *PlannerHandler) GetGrid(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	rows, err := h.plannerService.Grid(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": rows})
}

// AddEntry places a saved recipe into a (day, slot) cell.
func (h *PlannerHandler) AddEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.PlannerAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	savedRecipeID, err := uuid.Parse(req.SavedRecipeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid saved recipe id"})
		return
	}

	entry, err := h.plannerService.Add(c.Request.Context(), userID, savedRecipeID,
		models.Weekday(req.Day), models.MealSlot(req.Slot))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDay), errors.Is(err, service.ErrInvalidSlot):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "saved recipe not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to meal plan"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// RemoveEntry deletes one planner entry owned by the caller.
func (h *PlannerHandler) RemoveEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := h.plannerService.Remove(c.Request.Context(), userID, entryID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Entry removed"})
}
