package entities

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNoEligibleItems   = errors.New("no items eligible for cancellation")
	ErrValidation        = errors.New("validation error")

	ErrOrderNotFound   = fmt.Errorf("order %w", ErrNotFound)
	ErrItemNotFound    = fmt.Errorf("order item %w", ErrNotFound)
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)

	ErrInvalidOrder = errors.New("invalid order data")
)
