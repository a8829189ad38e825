package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jxchen21/tastebuds-backend/internal/models"
	"github.com/jxchen21/tastebuds-backend/internal/service"
	"github.com/jxchen21/tastebuds-backend/internal/testhelpers"
)

func createSavedRecipe(t *testing.T, db *gorm.DB, userID uuid.UUID, recipeID, name string) *models.SavedRecipe {
	t.Helper()
	saved := &models.SavedRecipe{UserID: userID, RecipeID: recipeID, Name: name}
	require.NoError(t, db.Create(saved).Error)
	return saved
}

func TestGridIsAlwaysFull(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user := testhelpers.CreateTestUser(t, db, "alice", false)
	svc := service.NewPlannerService(db)

	rows, err := svc.Grid(context.Background(), user.ID)
	require.NoError(t, err)

	// 7 days x 4 slots, every cell present and empty but never nil.
	require.Len(t, rows, 7)
	for i, row := range rows {
		assert.Equal(t, models.Weekdays[i], row.Day)
		require.Len(t, row.Cells, 4)
		for j, cell := range row.Cells {
			assert.Equal(t, models.MealSlots[j], cell.Slot)
			assert.NotNil(t, cell.Entries)
			assert.Empty(t, cell.Entries)
		}
	}
}

func TestAddPlacesEntryInCell(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user := testhelpers.CreateTestUser(t, db, "alice", false)
	saved := createSavedRecipe(t, db, user.ID, "52772", "Teriyaki Chicken Casserole")
	svc := service.NewPlannerService(db)
	ctx := context.Background()

	entry, err := svc.Add(ctx, user.ID, saved.ID, models.Wednesday, models.Dinner)
	require.NoError(t, err)
	assert.Equal(t, "Teriyaki Chicken Casserole", entry.SavedRecipe.Name)

	rows, err := svc.Grid(ctx, user.ID)
	require.NoError(t, err)

	cell := rows[2].Cells[2] // Wednesday, Dinner
	require.Len(t, cell.Entries, 1)
	assert.Equal(t, entry.ID, cell.Entries[0].ID)
	assert.Equal(t, saved.ID, cell.Entries[0].SavedRecipeID)
}

func TestAddAllowsDuplicatesInCell(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user := testhelpers.CreateTestUser(t, db, "alice", false)
	saved := createSavedRecipe(t, db, user.ID, "52772", "Teriyaki Chicken Casserole")
	svc := service.NewPlannerService(db)
	ctx := context.Background()

	first, err := svc.Add(ctx, user.ID, saved.ID, models.Monday, models.Lunch)
	require.NoError(t, err)
	second, err := svc.Add(ctx, user.ID, saved.ID, models.Monday, models.Lunch)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	rows, err := svc.Grid(ctx, user.ID)
	require.NoError(t, err)

	cell := rows[0].Cells[1] // Monday, Lunch
	require.Len(t, cell.Entries, 2)
	// Creation order within the cell.
	assert.Equal(t, first.ID, cell.Entries[0].ID)
	assert.Equal(t, second.ID, cell.Entries[1].ID)
}

func TestAddRejectsInvalidDayAndSlot(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user := testhelpers.CreateTestUser(t, db, "alice", false)
	saved := createSavedRecipe(t, db, user.ID, "52772", "Teriyaki Chicken Casserole")
	svc := service.NewPlannerService(db)
	ctx := context.Background()

	_, err := svc.Add(ctx, user.ID, saved.ID, models.Weekday("Funday"), models.Dinner)
	assert.ErrorIs(t, err, service.ErrInvalidDay)

	_, err = svc.Add(ctx, user.ID, saved.ID, models.Monday, models.MealSlot("Brunch"))
	assert.ErrorIs(t, err, service.ErrInvalidSlot)

	var count int64
	require.NoError(t, db.Model(&models.MealPlanEntry{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAddRequiresOwnership(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	alice := testhelpers.CreateTestUser(t, db, "alice", false)
	bob := testhelpers.CreateTestUser(t, db, "bob", false)
	saved := createSavedRecipe(t, db, alice.ID, "52772", "Teriyaki Chicken Casserole")
	svc := service.NewPlannerService(db)

	// Bob cannot plan with Alice's bookmark.
	_, err := svc.Add(context.Background(), bob.ID, saved.ID, models.Monday, models.Dinner)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestRemoveEntry(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	alice := testhelpers.CreateTestUser(t, db, "alice", false)
	bob := testhelpers.CreateTestUser(t, db, "bob", false)
	saved := createSavedRecipe(t, db, alice.ID, "52772", "Teriyaki Chicken Casserole")
	svc := service.NewPlannerService(db)
	ctx := context.Background()

	entry, err := svc.Add(ctx, alice.ID, saved.ID, models.Sunday, models.Breakfast)
	require.NoError(t, err)

	// Someone else's entry reads as missing.
	assert.ErrorIs(t, svc.Remove(ctx, bob.ID, entry.ID), service.ErrNotFound)

	require.NoError(t, svc.Remove(ctx, alice.ID, entry.ID))
	assert.ErrorIs(t, svc.Remove(ctx, alice.ID, entry.ID), service.ErrNotFound)
}
