package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Weekday and MealSlot are the two axes of the planner grid. Both are
// closed sets; anything outside them is rejected before it reaches
// the database.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays lists the planner rows in display order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (d Weekday) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

type MealSlot string

const (
	Breakfast MealSlot = "Breakfast"
	Lunch     MealSlot = "Lunch"
	Dinner    MealSlot = "Dinner"
	Snack     MealSlot = "Snack"
)

// MealSlots lists the planner columns in display order.
var MealSlots = []MealSlot{Breakfast, Lunch, Dinner, Snack}

func (s MealSlot) Valid() bool {
	switch s {
	case Breakfast, Lunch, Dinner, Snack:
		return true
	}
	return false
}

// MealPlanEntry assigns one saved recipe to a (day, slot) cell. A cell
// may hold any number of entries, duplicates included. Entries are
// removed explicitly or when the referenced SavedRecipe is unsaved.
type MealPlanEntry struct {
	ID            uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID        uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	SavedRecipeID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"saved_recipe_id"`
	Day           Weekday   `gorm:"size:16;not null" json:"day"`
	Slot          MealSlot  `gorm:"size:16;not null" json:"slot"`
	CreatedAt     time.Time `json:"created_at"`

	SavedRecipe SavedRecipe `gorm:"foreignKey:SavedRecipeID;constraint:OnDelete:CASCADE" json:"saved_recipe"`
}

func (MealPlanEntry) TableName() string {
	return "meal_plan_entries"
}

func (e *MealPlanEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
