package testhelpers

import (
	"context"

	"github.com/jxchen21/tastebuds-backend/internal/mealdb"
)

// FakeRecipeSource is a scriptable stand-in for the mealdb client.
// Each endpoint is driven by its function field; a nil field behaves
// like an empty upstream (no results, no error). Call counters record
// how often each endpoint was hit.
type FakeRecipeSource struct {
	RandomFunc           func(ctx context.Context) (*mealdb.Meal, error)
	LookupFunc           func(ctx context.Context, id string) (*mealdb.Meal, error)
	FilterByCategoryFunc func(ctx context.Context, category string) ([]mealdb.Summary, error)
	FilterByAreaFunc     func(ctx context.Context, area string) ([]mealdb.Summary, error)
	SearchByNameFunc     func(ctx context.Context, name string) ([]mealdb.Summary, error)

	RandomCalls           int
	LookupCalls           int
	FilterByCategoryCalls int
	FilterByAreaCalls     int
	SearchByNameCalls     int
}

func (f *FakeRecipeSource) Random(ctx context.Context) (*mealdb.Meal, error) {
	f.RandomCalls++
	if f.RandomFunc == nil {
		return nil, nil
	}
	return f.RandomFunc(ctx)
}

func (f *FakeRecipeSource) Lookup(ctx context.Context, id string) (*mealdb.Meal, error) {
	f.LookupCalls++
	if f.LookupFunc == nil {
		return nil, nil
	}
	return f.LookupFunc(ctx, id)
}

func (f *FakeRecipeSource) FilterByCategory(ctx context.Context, category string) ([]mealdb.Summary, error) {
	f.FilterByCategoryCalls++
	if f.FilterByCategoryFunc == nil {
		return nil, nil
	}
	return f.FilterByCategoryFunc(ctx, category)
}

func (f *FakeRecipeSource) FilterByArea(ctx context.Context, area string) ([]mealdb.Summary, error) {
	f.FilterByAreaCalls++
	if f.FilterByAreaFunc == nil {
		return nil, nil
	}
	return f.FilterByAreaFunc(ctx, area)
}

func (f *FakeRecipeSource) SearchByName(ctx context.Context, name string) ([]mealdb.Summary, error) {
	f.SearchByNameCalls++
	if f.SearchByNameFunc == nil {
		return nil, nil
	}
	return f.SearchByNameFunc(ctx, name)
}

// TotalCalls sums every endpoint counter. Useful for asserting that
// nothing was fetched at all.
func (f *FakeRecipeSource) TotalCalls() int {
	return f.RandomCalls + f.LookupCalls + f.FilterByCategoryCalls +
		f.FilterByAreaCalls + f.SearchByNameCalls
}

// MealFixture builds a full meal with the given ingredients, for
// scripting Lookup and Random responses.
func MealFixture(id, name string, ingredients ...string) *mealdb.Meal {
	meal := &mealdb.Meal{
		ID:       id,
		Name:     name,
		ThumbURL: "https://example.com/" + id + ".jpg",
	}
	for _, ing := range ingredients {
		meal.Ingredients = append(meal.Ingredients, mealdb.Ingredient{Name: ing})
	}
	return meal
}
