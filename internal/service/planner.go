package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jxchen21/tastebuds-backend/internal/models"
	"gorm.io/gorm"
)

// PlannerService arranges saved recipes on the weekly day-by-slot grid.
type PlannerService struct {
	db *gorm.DB
}

// NewPlannerService creates a new PlannerService instance.
func NewPlannerService(db *gorm.DB) *PlannerService {
	return &PlannerService{db: db}
}

// PlannerCell is one (day, slot) cell with its entries in creation
// order. Entries is never nil so empty cells render as [].
type PlannerCell struct {
	Slot    models.MealSlot        `json:"slot"`
	Entries []models.MealPlanEntry `json:"entries"`
}

// PlannerRow is one day with all four slots.
type PlannerRow struct {
	Day   models.Weekday `json:"day"`
	Cells []PlannerCell  `json:"cells"`
}

// Grid returns the full 7x4 planner for a user. Every cell is present
// even when empty.
func (s *PlannerService) Grid(ctx context.Context, userID uuid.UUID) ([]PlannerRow, error) {
	var entries []models.MealPlanEntry
	err := s.db.WithContext(ctx).
		Preload("SavedRecipe").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	type cellKey struct {
		day  models.Weekday
		slot models.MealSlot
	}
	byCell := make(map[cellKey][]models.MealPlanEntry)
	for _, e := range entries {
		key := cellKey{e.Day, e.Slot}
		byCell[key] = append(byCell[key], e)
	}

	rows := make([]PlannerRow, 0, len(models.Weekdays))
	for _, day := range models.Weekdays {
		row := PlannerRow{Day: day, Cells: make([]PlannerCell, 0, len(models.MealSlots))}
		for _, slot := range models.MealSlots {
			cell := PlannerCell{Slot: slot, Entries: make([]models.MealPlanEntry, 0)}
			cell.Entries = append(cell.Entries, byCell[cellKey{day, slot}]...)
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Add places a saved recipe into a cell. The saved recipe must belong
// to the caller; day and slot must be members of their enums. Re-adding
// the same recipe to the same cell creates a second, distinct entry.
func (s *PlannerService) Add(ctx context.Context, userID, savedRecipeID uuid.UUID, day models.Weekday, slot models.MealSlot) (*models.MealPlanEntry, error) {
	if !day.Valid() {
		return nil, ErrInvalidDay
	}
	if !slot.Valid() {
		return nil, ErrInvalidSlot
	}

	var saved models.SavedRecipe
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", savedRecipeID, userID).
		First(&saved).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	entry := models.MealPlanEntry{
		UserID:        userID,
		SavedRecipeID: saved.ID,
		Day:           day,
		Slot:          slot,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	entry.SavedRecipe = saved
	return &entry, nil
}

// Remove deletes a planner entry owned by the caller.
func (s *PlannerService) Remove(ctx context.Context, userID, entryID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.MealPlanEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
