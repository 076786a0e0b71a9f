package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgItemNotFound      = "item not found"
	ErrMsgOrderNotFound     = "order not found"
	ErrMsgInsufficientStock = "insufficient stock"
	ErrMsgValidation        = "invalid input"
	ErrMsgDependencyFailure = "dependency failure"
	ErrMsgPersistence       = "persistence failure"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrOrderNotFound     = errors.New(ErrMsgOrderNotFound)
	ErrInsufficientStock = errors.New(ErrMsgInsufficientStock)
	ErrValidation        = errors.New(ErrMsgValidation)
	ErrDependencyFailure = errors.New(ErrMsgDependencyFailure)
	ErrPersistence       = errors.New(ErrMsgPersistence)
)
