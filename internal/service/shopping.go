package service

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jxchen21/tastebuds-backend/internal/models"
	"gorm.io/gorm"
)

// ShoppingService derives a deduplicated ingredient set from the user's
// saved recipes and reconciles it with their manually tracked items.
type ShoppingService struct {
	db     *gorm.DB
	source RecipeSource
}

// NewShoppingService creates a new ShoppingService instance.
func NewShoppingService(db *gorm.DB, source RecipeSource) *ShoppingService {
	return &ShoppingService{db: db, source: source}
}

// ListedItem pairs an ingredient name with its shopping item id.
type ListedItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ShoppingList is the reconciled view. The three lists are disjoint by
// name and each is sorted by name:
//   - ToAdd: recipe-derived ingredients with no matching item yet
//   - Listed: recipe-derived ingredients already on the list
//   - Custom: items unrelated to any saved recipe
type ShoppingList struct {
	ToAdd  []string     `json:"to_add"`
	Listed []ListedItem `json:"listed"`
	Custom []ListedItem `json:"custom"`
}

// List builds the reconciled shopping list for a user. A fetch failure
// for one recipe skips that recipe and keeps aggregating the rest.
func (s *ShoppingService) List(ctx context.Context, userID uuid.UUID) (*ShoppingList, error) {
	var saved []models.SavedRecipe
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&saved).Error
	if err != nil {
		return nil, err
	}

	derived := make(map[string]struct{})
	for _, sr := range saved {
		meal, err := s.source.Lookup(ctx, sr.RecipeID)
		if err != nil {
			log.Printf("lookup of saved recipe %s failed: %v", sr.RecipeID, err)
			continue
		}
		if meal == nil {
			continue
		}
		for _, ing := range meal.Ingredients {
			name := strings.TrimSpace(ing.Name)
			if name == "" {
				continue
			}
			derived[name] = struct{}{}
		}
	}

	var items []models.ShoppingItem
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, err
	}

	itemByName := make(map[string]models.ShoppingItem, len(items))
	for _, item := range items {
		itemByName[item.Name] = item
	}

	list := &ShoppingList{
		ToAdd:  make([]string, 0),
		Listed: make([]ListedItem, 0),
		Custom: make([]ListedItem, 0),
	}

	for name := range derived {
		if item, ok := itemByName[name]; ok {
			list.Listed = append(list.Listed, ListedItem{ID: item.ID, Name: item.Name})
		} else {
			list.ToAdd = append(list.ToAdd, name)
		}
	}
	for _, item := range items {
		if _, ok := derived[item.Name]; !ok {
			list.Custom = append(list.Custom, ListedItem{ID: item.ID, Name: item.Name})
		}
	}

	sort.Strings(list.ToAdd)
	sort.Slice(list.Listed, func(i, j int) bool { return list.Listed[i].Name < list.Listed[j].Name })
	sort.Slice(list.Custom, func(i, j int) bool { return list.Custom[i].Name < list.Custom[j].Name })

	return list, nil
}

// AddItem adds a named item to the user's list. Adding a name that is
// already listed is not an error; the existing item is returned with
// created=false.
func (s *ShoppingService) AddItem(ctx context.Context, userID uuid.UUID, name string) (*models.ShoppingItem, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, ErrEmptyItemName
	}

	var existing models.ShoppingItem
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	item := models.ShoppingItem{UserID: userID, Name: name}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, false, err
	}
	return &item, true, nil
}

// RemoveItem deletes an item owned by the caller.
func (s *ShoppingService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.ShoppingItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
