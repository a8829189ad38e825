package database

import (
	"github.com/jxchen21/tastebuds-backend/internal/models"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates every application table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Rating{},
		&models.SavedRecipe{},
		&models.MealPlanEntry{},
		&models.ShoppingItem{},
	)
}
