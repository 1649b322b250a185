package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Machine-readable reasons returned to clients in the "code" field.
const (
	ReasonInvalidBody      = "invalid_body"
	ReasonMissingField     = "missing_field"
	ReasonInvalidMobile    = "invalid_mobile"
	ReasonInvalidAmount    = "invalid_amount"
	ReasonInvalidSignature = "invalid_signature"
	ReasonProviderError    = "provider_error"
	ReasonStorageError     = "storage_error"
	ReasonNotFound         = "not_found"
	ReasonUnauthorized     = "unauthorized"
	ReasonInternal         = "internal_error"
)

// AppError represents an application error
type AppError struct {
	Code    int    `json:"-"`
	Reason  string `json:"code"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code int, reason, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Reason:  reason,
		Message: message,
		Err:     err,
	}
}

// NewValidationError is returned for malformed client input. It never mutates state.
func NewValidationError(reason, message string) *AppError {
	return NewAppError(http.StatusBadRequest, reason, message, nil)
}

// NewVerificationError is returned when a payment cannot be authenticated.
func NewVerificationError(reason, message string) *AppError {
	return NewAppError(http.StatusBadRequest, reason, message, nil)
}

// NewProviderError wraps a failed call to the payment provider.
func NewProviderError(err error) *AppError {
	return NewAppError(http.StatusBadGateway, ReasonProviderError, "Payment provider error: "+err.Error(), err)
}

// NewStorageError wraps a failed or rolled back store operation.
func NewStorageError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, ReasonStorageError, "Database error: "+err.Error(), err)
}

// NotFoundError creates a 404 Not Found error
func NotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, ReasonNotFound, message, nil)
}

// GetAppError returns the AppError if err is or wraps an AppError
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// ReasonOf returns the machine-readable reason of err, or "" when err is not an AppError.
func ReasonOf(err error) string {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Reason
	}
	return ""
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	switch ReasonOf(err) {
	case ReasonInvalidBody, ReasonMissingField, ReasonInvalidMobile, ReasonInvalidAmount:
		return true
	}
	return false
}

// IsVerificationError checks if an error is a signature verification failure
func IsVerificationError(err error) bool {
	return ReasonOf(err) == ReasonInvalidSignature
}

// IsProviderError checks if an error came from the payment provider
func IsProviderError(err error) bool {
	return ReasonOf(err) == ReasonProviderError
}

// IsStorageError checks if an error came from the store
func IsStorageError(err error) bool {
	return ReasonOf(err) == ReasonStorageError
}

// IsNotFoundError checks if an error is a "not found" error
func IsNotFoundError(err error) bool {
	return ReasonOf(err) == ReasonNotFound
}
