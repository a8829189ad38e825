package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SavedRecipe is a per-user bookmark of an upstream recipe, with the
// name and thumbnail snapshotted at save time.
type SavedRecipe struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_user_recipe_save" json:"user_id"`
	RecipeID  string    `gorm:"size:32;not null;uniqueIndex:idx_user_recipe_save" json:"recipe_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	ThumbURL  string    `gorm:"size:255" json:"thumb_url"`
	CreatedAt time.Time `json:"created_at"`
}

func (SavedRecipe) TableName() string {
	return "saved_recipes"
}

func (s *SavedRecipe) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
