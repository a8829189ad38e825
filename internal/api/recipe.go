package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jxchen21/tastebuds-backend/internal/middleware"
	"github.com/jxchen21/tastebuds-backend/internal/service"
)

// RecipeHandler serves the recipe listing/search, detail, rating and
// save-toggle surfaces.
type RecipeHandler struct {
	searchService *service.SearchService
	ratingService *service.RatingService
	savedService  *service.SavedRecipeService
	source        service.RecipeSource
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(searchService *service.SearchService, ratingService *service.RatingService, savedService *service.SavedRecipeService, source service.RecipeSource) *RecipeHandler {
	return &RecipeHandler{
		searchService: searchService,
		ratingService: ratingService,
		savedService:  savedService,
		source:        source,
	}
}

// ListRecipes serves the browse/search page. Anonymous callers get the
// random listing; a search (any term present) requires login and
// redirects to it before anything is fetched upstream.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	category := c.Query("category")
	region := c.Query("region")

	if category != "" || region != "" {
		if _, ok := currentUserID(c); !ok {
			c.Redirect(http.StatusFound, middleware.LoginPath)
			return
		}
	}

	results, label := h.searchService.Search(c.Request.Context(), category, region)

	resp := gin.H{"recipes": results}
	if label != "" {
		resp["search_type"] = label
	}
	c.JSON(http.StatusOK, resp)
}

// GetRecipe serves the detail page: full recipe, rating aggregates and
// (for authenticated callers) whether it is saved.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id := c.Param("id")

	meal, err := h.source.Lookup(c.Request.Context(), id)
	if err != nil || meal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	stats, err := h.ratingService.Stats(c.Request.Context(), meal.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ratings"})
		return
	}

	saved := false
	if userID, ok := currentUserID(c); ok {
		saved, _ = h.savedService.IsSaved(c.Request.Context(), userID, meal.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"recipe":  meal,
		"ratings": stats,
		"saved":   saved,
	})
}

// RateRecipe creates or replaces the caller's rating for a recipe.
func (h *RecipeHandler) RateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req struct {
		Value   int    `json:"value" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.ratingService.Submit(c.Request.Context(), userID, c.Param("id"), req.Value, req.Comment)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRating) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit rating"})
		return
	}

	message := "Rating updated"
	if created {
		message = "Rating submitted"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"created": created,
	})
}

// SaveRecipe toggles the bookmark for a recipe.
func (h *RecipeHandler) SaveRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	saved, err := h.savedService.Toggle(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save recipe"})
		return
	}

	status := "unsaved"
	if saved {
		status = "saved"
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

// ListSavedRecipes returns the caller's bookmarks.
func (h *RecipeHandler) ListSavedRecipes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	saved, err := h.savedService.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch saved recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved_recipes": saved})
}
