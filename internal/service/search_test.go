package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jxchen21/tastebuds-backend/internal/mealdb"
	"github.com/jxchen21/tastebuds-backend/internal/service"
	"github.com/jxchen21/tastebuds-backend/internal/testhelpers"
)

func TestSearchRandomListing(t *testing.T) {
	n := 0
	source := &testhelpers.FakeRecipeSource{
		RandomFunc: func(ctx context.Context) (*mealdb.Meal, error) {
			n++
			return testhelpers.MealFixture(string(rune('0'+n)), "Meal"), nil
		},
	}
	svc := service.NewSearchService(source)

	results, label := svc.Search(context.Background(), "", "")
	assert.Empty(t, label)
	assert.Len(t, results, service.DefaultRandomCount)
	assert.Equal(t, service.DefaultRandomCount, source.RandomCalls)
}

func TestSearchRandomListingSkipsFailures(t *testing.T) {
	n := 0
	source := &testhelpers.FakeRecipeSource{
		RandomFunc: func(ctx context.Context) (*mealdb.Meal, error) {
			n++
			if n%2 == 0 {
				return nil, errors.New("upstream down")
			}
			return testhelpers.MealFixture("1", "Meal"), nil
		},
	}
	svc := service.NewSearchService(source)

	// Failed attempts are dropped, not retried: the listing comes up
	// short rather than erroring.
	results, _ := svc.Search(context.Background(), "", "")
	assert.Len(t, results, service.DefaultRandomCount/2)
	assert.Equal(t, service.DefaultRandomCount, source.RandomCalls)
}

func TestSearchByRegion(t *testing.T) {
	source := &testhelpers.FakeRecipeSource{
		FilterByAreaFunc: func(ctx context.Context, area string) ([]mealdb.Summary, error) {
			assert.Equal(t, "Japanese", area)
			return []mealdb.Summary{{ID: "52772", Name: "Teriyaki Chicken Casserole"}}, nil
		},
	}
	svc := service.NewSearchService(source)

	results, label := svc.Search(context.Background(), "", "Japanese")
	assert.Equal(t, service.LabelRegion, label)
	require.Len(t, results, 1)
	assert.Equal(t, "52772", results[0].ID)
}

func TestSearchCategoryHit(t *testing.T) {
	source := &testhelpers.FakeRecipeSource{
		FilterByCategoryFunc: func(ctx context.Context, category string) ([]mealdb.Summary, error) {
			return []mealdb.Summary{{ID: "1", Name: "Apam balik"}}, nil
		},
	}
	svc := service.NewSearchService(source)

	results, label := svc.Search(context.Background(), "Dessert", "")
	assert.Equal(t, service.LabelCategory, label)
	assert.Len(t, results, 1)
	assert.Zero(t, source.SearchByNameCalls)
}

func TestSearchCategoryFallsBackToNameSearch(t *testing.T) {
	source := &testhelpers.FakeRecipeSource{
		SearchByNameFunc: func(ctx context.Context, name string) ([]mealdb.Summary, error) {
			assert.Equal(t, "Arrabiata", name)
			return []mealdb.Summary{{ID: "52771", Name: "Spicy Arrabiata Penne"}}, nil
		},
	}
	svc := service.NewSearchService(source)

	// "Arrabiata" is no category, so the empty category filter falls
	// through to a free-text name search.
	results, label := svc.Search(context.Background(), "Arrabiata", "")
	assert.Equal(t, service.LabelNameSearch, label)
	require.Len(t, results, 1)
	assert.Equal(t, "52771", results[0].ID)
	assert.Equal(t, 1, source.FilterByCategoryCalls)
}

func TestSearchCategoryErrorFallsBackToNameSearch(t *testing.T) {
	source := &testhelpers.FakeRecipeSource{
		FilterByCategoryFunc: func(ctx context.Context, category string) ([]mealdb.Summary, error) {
			return nil, errors.New("upstream down")
		},
		SearchByNameFunc: func(ctx context.Context, name string) ([]mealdb.Summary, error) {
			return []mealdb.Summary{{ID: "7", Name: "Poutine"}}, nil
		},
	}
	svc := service.NewSearchService(source)

	results, label := svc.Search(context.Background(), "Poutine", "")
	assert.Equal(t, service.LabelNameSearch, label)
	assert.Len(t, results, 1)
}

func TestSearchIntersection(t *testing.T) {
	source := &testhelpers.FakeRecipeSource{
		FilterByCategoryFunc: func(ctx context.Context, category string) ([]mealdb.Summary, error) {
			return []mealdb.Summary{
				{ID: "30", Name: "C"},
				{ID: "10", Name: "A"},
				{ID: "20", Name: "B"},
			}, nil
		},
		FilterByAreaFunc: func(ctx context.Context, area string) ([]mealdb.Summary, error) {
			return []mealdb.Summary{
				{ID: "20", Name: "B"},
				{ID: "30", Name: "C"},
				{ID: "40", Name: "D"},
			}, nil
		},
	}
	svc := service.NewSearchService(source)

	results, label := svc.Search(context.Background(), "Seafood", "Japanese")
	assert.Equal(t, service.LabelCategoryAndRegion, label)
	require.Len(t, results, 2)

	// Only ids present in both lists survive, ordered by id.
	assert.Equal(t, "20", results[0].ID)
	assert.Equal(t, "30", results[1].ID)
}

func TestSearchIntersectionDegradesToEmpty(t *testing.T) {
	source := &testhelpers.FakeRecipeSource{
		FilterByCategoryFunc: func(ctx context.Context, category string) ([]mealdb.Summary, error) {
			return nil, errors.New("upstream down")
		},
		FilterByAreaFunc: func(ctx context.Context, area string) ([]mealdb.Summary, error) {
			return []mealdb.Summary{{ID: "1", Name: "A"}}, nil
		},
	}
	svc := service.NewSearchService(source)

	results, label := svc.Search(context.Background(), "Seafood", "Japanese")
	assert.Equal(t, service.LabelCategoryAndRegion, label)
	assert.Empty(t, results)
	assert.NotNil(t, results)
}
