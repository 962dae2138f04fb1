// Package errors provides application-level error types and utilities.
// It defines the business error taxonomy of the routing engine: not found,
// invalid state, forbidden, conflict, pending answer, and upstream failures.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation          ErrorType = "validation_error"
	ErrorTypeNotFound            ErrorType = "not_found"
	ErrorTypeInvalidState        ErrorType = "invalid_state"
	ErrorTypeConflict            ErrorType = "conflict"
	ErrorTypeForbidden           ErrorType = "forbidden"
	ErrorTypePendingAnswer       ErrorType = "pending_answer_exists"
	ErrorTypeUpstreamUnavailable ErrorType = "upstream_unavailable"
	ErrorTypeInternal            ErrorType = "internal_error"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(errType ErrorType, code int, message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    errType,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details...)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details...)
}

// NewInvalidStateError creates an error for operations that are not legal
// in the record's current status.
func NewInvalidStateError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInvalidState, http.StatusConflict, message, details...)
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details...)
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details...)
}

// NewPendingAnswerError signals that a follow-up cannot be opened because the
// previous answer cycle has not completed.
func NewPendingAnswerError(message string, details ...string) *AppError {
	return newAppError(ErrorTypePendingAnswer, http.StatusUnprocessableEntity, message, details...)
}

// NewUpstreamUnavailableError signals that an external collaborator (the
// similarity oracle) failed or timed out.
func NewUpstreamUnavailableError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUpstreamUnavailable, http.StatusBadGateway, message, details...)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details...)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsInvalidStateError checks if the error is an invalid state error
func IsInvalidStateError(err error) bool {
	return isType(err, ErrorTypeInvalidState)
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return isType(err, ErrorTypeConflict)
}

// IsForbiddenError checks if the error is a forbidden error
func IsForbiddenError(err error) bool {
	return isType(err, ErrorTypeForbidden)
}

// IsPendingAnswerError checks if the error is a pending answer error
func IsPendingAnswerError(err error) bool {
	return isType(err, ErrorTypePendingAnswer)
}

// IsUpstreamUnavailableError checks if the error is an upstream failure
func IsUpstreamUnavailableError(err error) bool {
	return isType(err, ErrorTypeUpstreamUnavailable)
}
