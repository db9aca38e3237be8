package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDuplicateCode     = errors.New("code already in use")
	ErrUnknownReference  = errors.New("referenced resource does not exist")
	ErrForbidden         = errors.New("access denied")
	ErrConflict          = errors.New("conflict with current state")
)
