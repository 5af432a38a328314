package domain

import "errors"

var (
	ErrProductNotFound       = errors.New("product not found")
	ErrInvalidProductPrice   = errors.New("product price must be positive")
	ErrInvalidProductName    = errors.New("product name is required")
	ErrDuplicateProductID    = errors.New("product with this id already exists")
	ErrTableNotFound         = errors.New("table not found")
	ErrDuplicateTableID      = errors.New("table with this id already exists")
	ErrDuplicateTableNumber  = errors.New("table with this number already exists")
	ErrInvalidTableNumber    = errors.New("table number must be a positive integer")
	ErrInvalidTableCapacity  = errors.New("table capacity must be a positive integer")
	ErrIncompleteReservation = errors.New("reservation requires name, time and phone")
	ErrOrderNotFound         = errors.New("order not found")
	ErrEmptyOrder            = errors.New("order must contain at least one item")
	ErrTotalMismatch         = errors.New("order total does not match its items")
	ErrInvalidStatus         = errors.New("unknown order status")
	ErrInvalidTransition     = errors.New("order status transition not allowed")
	ErrDuplicateOrderID      = errors.New("order with this id already exists")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrDuplicateEmail        = errors.New("user with this email already exists")
	ErrMissingFields         = errors.New("required fields are missing")
	ErrNotAuthenticated      = errors.New("no active session")
	ErrForbidden             = errors.New("admin role required")
	ErrNotPersisted          = errors.New("change applied but not persisted")
)
