package service

import "errors"

var (
	// ErrNotFound covers ids that do not exist or belong to another user.
	ErrNotFound = errors.New("not found")

	// ErrRecipeNotFound means the upstream recipe source had no match
	// for the requested id.
	ErrRecipeNotFound = errors.New("recipe not found")

	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrInvalidDay         = errors.New("invalid day of week")
	ErrInvalidSlot        = errors.New("invalid meal slot")
	ErrEmptyItemName      = errors.New("item name must not be empty")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is deactivated")
	ErrCannotSelfDisable  = errors.New("cannot deactivate your own account")
)
