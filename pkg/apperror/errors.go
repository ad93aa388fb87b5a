package apperror

import (
	"errors"
	"net/http"
)

// AppError carries an HTTP status code alongside the user-facing message so
// handlers can map service failures without string matching.
type AppError struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"` // missing/invalid field names for validation failures
}

func (e *AppError) Error() string {
	return e.Message
}

var (
	ErrReceiptNotFound     = &AppError{Code: http.StatusNotFound, Message: "Receipt not found"}
	ErrDuplicateSlipNumber = &AppError{Code: http.StatusBadRequest, Message: "Loading slip number already exists"}
	ErrInvalidCredentials  = &AppError{Code: http.StatusUnauthorized, Message: "Invalid credentials"}
	ErrInvalidToken        = &AppError{Code: http.StatusUnauthorized, Message: "Invalid or expired token"}
	ErrRenderFailed        = &AppError{Code: http.StatusInternalServerError, Message: "Error generating PDF"}
	ErrStoreUnavailable    = &AppError{Code: http.StatusServiceUnavailable, Message: "Storage temporarily unavailable, please retry"}
	ErrRendererUnavailable = &AppError{Code: http.StatusServiceUnavailable, Message: "PDF engine unavailable, please retry"}
)

// NewValidationError reports the missing/invalid payload fields. Validation
// failure is a reportable result carried as data, not an exceptional state.
func NewValidationError(fields []string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "Missing or invalid required fields",
		Fields:  fields,
	}
}

// NewBadRequest wraps an arbitrary client mistake (malformed id, bad date).
func NewBadRequest(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

// From converts any error into an AppError, defaulting to a 500.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Code: http.StatusInternalServerError, Message: err.Error()}
}
