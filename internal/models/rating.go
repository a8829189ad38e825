package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating is a user's review of an upstream recipe. RecipeID is the
// idMeal returned by the recipe source, stored as text since upstream
// ids are opaque.
type Rating struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_user_recipe_rating" json:"user_id"`
	RecipeID  string    `gorm:"size:32;not null;uniqueIndex:idx_user_recipe_rating;index" json:"recipe_id"`
	Value     int       `gorm:"not null;check:value >= 1 AND value <= 5" json:"value"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Rating) TableName() string {
	return "ratings"
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
