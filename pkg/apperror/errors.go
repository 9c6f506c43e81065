package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound       = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrUnauthorized   = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden      = &AppError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrInvalidToken   = &AppError{Code: http.StatusUnauthorized, Message: "Invalid token"}
)

// Cart and checkout validation errors. These are detected synchronously,
// before any upstream request, and never corrupt cart state.
var (
	ErrDuplicateUniqueItem  = &AppError{Code: http.StatusConflict, Message: "This lab item has already been added to the sale"}
	ErrOutOfStock           = &AppError{Code: http.StatusConflict, Message: "Product has no stock available"}
	ErrStockCeilingExceeded = &AppError{Code: http.StatusConflict, Message: "Quantity exceeds available stock"}
	ErrTenderNotEligible    = &AppError{Code: http.StatusUnprocessableEntity, Message: "Client is not enabled for cheque payment"}
	ErrInsufficientTender   = &AppError{Code: http.StatusUnprocessableEntity, Message: "Amount tendered is less than the sale total"}
	ErrSaleNotEditable      = &AppError{Code: http.StatusConflict, Message: "Sale is confirmed or annulled and can no longer be edited"}
)

// Session and lifecycle errors local to this service.
var (
	ErrCartNotFound      = &AppError{Code: http.StatusNotFound, Message: "Cart session not found"}
	ErrNoClientSelected  = &AppError{Code: http.StatusUnprocessableEntity, Message: "A client must be selected before submitting"}
	ErrEmptyCart         = &AppError{Code: http.StatusUnprocessableEntity, Message: "Cart has no lines"}
	ErrSubmitInFlight    = &AppError{Code: http.StatusConflict, Message: "A submit for this cart is already in progress"}
	ErrLineNotFound      = &AppError{Code: http.StatusNotFound, Message: "Cart line not found"}
	ErrUpstreamTransport = &AppError{Code: http.StatusBadGateway, Message: "Upstream service unavailable"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewUpstreamError wraps a rejection from a remote service, preserving its
// status code and message so the operator sees the authoritative reason verbatim.
func NewUpstreamError(statusCode int, message string) *AppError {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return &AppError{
		Code:    statusCode,
		Message: message,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
