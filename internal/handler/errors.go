package handler

import (
	"errors"
	"net/http"

	"github.com/medikit/ClinicStock_Go/internal/domain"
)

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// User-facing messages derived from domain errors
	ErrMsgGenericServerError     = "Something went wrong"
	ErrMsgUnknownError           = "Unknown error"
	ErrMsgItemNotFoundError      = "Item not found"
	ErrMsgOrderNotFoundError     = "Purchase order not found"
	ErrMsgInsufficientStockError = "Insufficient stock"
	ErrMsgUnavailableError       = "Service is temporarily unavailable. Please try again later."
	ErrMsgStorageError           = "Failed to read or write inventory data"
)

// Success messages for API responses
const (
	MsgItemDeletedSuccess = "Item deleted successfully"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, ErrMsgOrderNotFoundError
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusBadRequest, ErrMsgInsufficientStockError
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrDependencyFailure):
		return http.StatusBadGateway, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrPersistence):
		return http.StatusInternalServerError, ErrMsgStorageError
	}

	// Unrecognized errors never reach the client verbatim.
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
