package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jxchen21/tastebuds-backend/internal/mealdb"
	"github.com/jxchen21/tastebuds-backend/internal/middleware"
	"github.com/jxchen21/tastebuds-backend/internal/service"
	"github.com/jxchen21/tastebuds-backend/internal/testhelpers"
)

func TestAnonymousBrowseGetsRandomListing(t *testing.T) {
	app := newTestApp(t)
	app.source.RandomFunc = func(ctx context.Context) (*mealdb.Meal, error) {
		return testhelpers.MealFixture("52772", "Teriyaki Chicken Casserole"), nil
	}

	w := app.request(t, http.MethodGet, "/api/v1/recipes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Len(t, body["recipes"], service.DefaultRandomCount)
	assert.NotContains(t, body, "search_type")
}

func TestAnonymousSearchRedirectsWithoutFetching(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodGet, "/api/v1/recipes?category=Dessert", "", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, middleware.LoginPath, w.Header().Get("Location"))

	// The redirect happens before any upstream call.
	assert.Zero(t, app.source.TotalCalls())
}

func TestAuthenticatedSearchCarriesLabel(t *testing.T) {
	app := newTestApp(t)
	_, token := app.login(t, "alice", false)
	app.source.FilterByAreaFunc = func(ctx context.Context, area string) ([]mealdb.Summary, error) {
		return []mealdb.Summary{{ID: "52772", Name: "Teriyaki Chicken Casserole"}}, nil
	}

	w := app.request(t, http.MethodGet, "/api/v1/recipes?region=Japanese", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, service.LabelRegion, body["search_type"])
	assert.Len(t, body["recipes"], 1)
}

func TestGetRecipeDetail(t *testing.T) {
	app := newTestApp(t)
	user, token := app.login(t, "alice", false)
	app.source.LookupFunc = func(ctx context.Context, id string) (*mealdb.Meal, error) {
		if id == "52772" {
			return testhelpers.MealFixture("52772", "Teriyaki Chicken Casserole", "soy sauce"), nil
		}
		return nil, nil
	}

	ratingService := service.NewRatingService(app.db)
	_, err := ratingService.Submit(context.Background(), user.ID, "52772", 4, "solid")
	require.NoError(t, err)

	w := app.request(t, http.MethodGet, "/api/v1/recipes/52772", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	recipe := body["recipe"].(map[string]interface{})
	assert.Equal(t, "Teriyaki Chicken Casserole", recipe["name"])
	ratings := body["ratings"].(map[string]interface{})
	assert.Equal(t, float64(1), ratings["count"])
	assert.Equal(t, false, body["saved"])
}

func TestGetRecipeUnknownID(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodGet, "/api/v1/recipes/0", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRateRecipeSubmitThenUpdate(t *testing.T) {
	app := newTestApp(t)
	_, token := app.login(t, "alice", false)

	w := app.request(t, http.MethodPost, "/api/v1/recipes/52772/rating", token,
		map[string]interface{}{"value": 5, "comment": "great"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Rating submitted", body["message"])
	assert.Equal(t, true, body["created"])

	w = app.request(t, http.MethodPost, "/api/v1/recipes/52772/rating", token,
		map[string]interface{}{"value": 2})
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "Rating updated", body["message"])
	assert.Equal(t, false, body["created"])
}

func TestRateRecipeRejectsOutOfRange(t *testing.T) {
	app := newTestApp(t)
	_, token := app.login(t, "alice", false)

	w := app.request(t, http.MethodPost, "/api/v1/recipes/52772/rating", token,
		map[string]interface{}{"value": 6})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRateRecipeRequiresLogin(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodPost, "/api/v1/recipes/52772/rating", "",
		map[string]interface{}{"value": 5})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, middleware.LoginPath, w.Header().Get("Location"))
}

func TestSaveToggle(t *testing.T) {
	app := newTestApp(t)
	_, token := app.login(t, "alice", false)
	app.source.LookupFunc = func(ctx context.Context, id string) (*mealdb.Meal, error) {
		if id == "52772" {
			return testhelpers.MealFixture("52772", "Teriyaki Chicken Casserole"), nil
		}
		return nil, nil
	}

	w := app.request(t, http.MethodPost, "/api/v1/recipes/52772/save", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "saved", decodeBody(t, w)["status"])

	w = app.request(t, http.MethodPost, "/api/v1/recipes/52772/save", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "unsaved", decodeBody(t, w)["status"])

	w = app.request(t, http.MethodPost, "/api/v1/recipes/0/save", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListSavedRecipes(t *testing.T) {
	app := newTestApp(t)
	_, token := app.login(t, "alice", false)
	app.source.LookupFunc = func(ctx context.Context, id string) (*mealdb.Meal, error) {
		return testhelpers.MealFixture(id, "Meal "+id), nil
	}

	for _, id := range []string{"1", "2"} {
		w := app.request(t, http.MethodPost, "/api/v1/recipes/"+id+"/save", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := app.request(t, http.MethodGet, "/api/v1/saved-recipes", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["saved_recipes"], 2)
}
