package types

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RateRequest submits or replaces the caller's rating for a recipe.
type RateRequest struct {
	Value   int    `json:"value" binding:"required"`
	Comment string `json:"comment"`
}

// PlannerAddRequest places a saved recipe into a planner cell.
type PlannerAddRequest struct {
	SavedRecipeID string `json:"saved_recipe_id" binding:"required"`
	Day           string `json:"day" binding:"required"`
	Slot          string `json:"slot" binding:"required"`
}

// ShoppingAddRequest adds a free-text item to the shopping list.
type ShoppingAddRequest struct {
	Name string `json:"name" binding:"required"`
}
