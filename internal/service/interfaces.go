package service

import (
	"context"

	"github.com/jxchen21/tastebuds-backend/internal/mealdb"
)

// RecipeSource is the outbound recipe lookup capability. The mealdb
// client satisfies it in production; tests substitute a fake. Callers
// treat any error or nil result as "no results" — source failures are
// never surfaced to users.
type RecipeSource interface {
	Random(ctx context.Context) (*mealdb.Meal, error)
	Lookup(ctx context.Context, id string) (*mealdb.Meal, error)
	FilterByCategory(ctx context.Context, category string) ([]mealdb.Summary, error)
	FilterByArea(ctx context.Context, area string) ([]mealdb.Summary, error)
	SearchByName(ctx context.Context, name string) ([]mealdb.Summary, error)
}
