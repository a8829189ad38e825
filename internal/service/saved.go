package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jxchen21/tastebuds-backend/internal/models"
	"gorm.io/gorm"
)

// SavedRecipeService maintains each user's bookmark set. Saving is a
// strict toggle: the same call saves when absent and unsaves when
// present.
type SavedRecipeService struct {
	db     *gorm.DB
	source RecipeSource
}

// NewSavedRecipeService creates a new SavedRecipeService instance.
func NewSavedRecipeService(db *gorm.DB, source RecipeSource) *SavedRecipeService {
	return &SavedRecipeService{db: db, source: source}
}

// Toggle saves or unsaves a recipe for the user. The caller-supplied id
// is resolved against the recipe source first: the canonical id the
// source reports is what gets stored, so differently-typed ids for the
// same recipe collapse onto one row. Returns true when the recipe ended
// up saved, false when it was removed.
func (s *SavedRecipeService) Toggle(ctx context.Context, userID uuid.UUID, recipeID string) (bool, error) {
	meal, err := s.source.Lookup(ctx, recipeID)
	if err != nil || meal == nil {
		return false, ErrRecipeNotFound
	}

	var existing models.SavedRecipe
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, meal.ID).
		First(&existing).Error
	if err == nil {
		// Unsave. Planner entries referencing the bookmark go with it.
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("saved_recipe_id = ?", existing.ID).
				Delete(&models.MealPlanEntry{}).Error; err != nil {
				return err
			}
			return tx.Delete(&existing).Error
		})
		if err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	saved := models.SavedRecipe{
		UserID:   userID,
		RecipeID: meal.ID,
		Name:     meal.Name,
		ThumbURL: meal.ThumbURL,
	}
	if err := s.db.WithContext(ctx).Create(&saved).Error; err != nil {
		return false, err
	}
	return true, nil
}

// List returns the user's bookmarks, newest first.
func (s *SavedRecipeService) List(ctx context.Context, userID uuid.UUID) ([]models.SavedRecipe, error) {
	var saved []models.SavedRecipe
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saved).Error
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// IsSaved reports whether the user has bookmarked the given canonical
// recipe id.
func (s *SavedRecipeService) IsSaved(ctx context.Context, userID uuid.UUID, recipeID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.SavedRecipe{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
