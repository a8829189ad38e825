package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShoppingItem is a free-standing list entry. It is matched against
// recipe-derived ingredient names at read time, never linked by id.
type ShoppingItem struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_user_item_name" json:"user_id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex:idx_user_item_name" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (ShoppingItem) TableName() string {
	return "shopping_items"
}

func (i *ShoppingItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
