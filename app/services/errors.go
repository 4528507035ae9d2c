package services

import "errors"

// Sentinel errors returned by the services. Controllers map these onto the
// API's wire contract; anything else is treated as an internal store failure.
var (
	// auth
	ErrEmptyCredentials   = errors.New("name or password is empty")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")

	// transactions
	ErrForbidden           = errors.New("forbidden")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidCart         = errors.New("cart must hold at least one item with quantity 1 or more")

	// catalogue
	ErrCategoryExists   = errors.New("category already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductExists    = errors.New("product already exists")
	ErrProductNotFound  = errors.New("product not found")
)
