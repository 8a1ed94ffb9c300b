package services

import "errors"

// Sentinels grouped by how handlers report them: invalid input, missing
// resource, conflicting write, or refused access. Store failures pass
// through wrapped so they surface as generic server errors.
var (
	ErrInvalidMeal         = errors.New("invalid meal type")
	ErrInvalidQuantity     = errors.New("quantity must be between 0 and 10")
	ErrInvalidItem         = errors.New("invalid menu item")
	ErrInvalidTiming       = errors.New("invalid timing format")
	ErrInvalidNotification = errors.New("invalid notification input")
	ErrInvalidRole         = errors.New("invalid role")

	ErrMenuNotFound         = errors.New("menu not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrMenuExists  = errors.New("menu already exists for this date")
	ErrEmailExists = errors.New("email already registered")

	ErrForbidden          = errors.New("access denied")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is deactivated")
	ErrSelfDeletion       = errors.New("cannot delete own account")
)
