package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"mrc-extractor/internal/domain"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation  ErrorType = "validation"
	ErrorTypeUnsupported ErrorType = "unsupported"
	ErrorTypeExtraction  ErrorType = "extraction"
	ErrorTypeArchive     ErrorType = "archive"
	ErrorTypeTooLarge    ErrorType = "too_large"
	ErrorTypeInternal    ErrorType = "internal"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		Details:    detail,
		StatusCode: http.StatusBadRequest,
	}
}

// NewTooLargeError creates an error for payloads above the configured limit
func NewTooLargeError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeTooLarge,
		Message:    message,
		StatusCode: http.StatusRequestEntityTooLarge,
		Cause:      cause,
	}
}

// NewInternalError creates a new internal server error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// FromDomain maps extraction pipeline errors onto AppErrors. The message is the
// user-visible text of the domain error. Pipeline failures are a normal upload outcome and
// keep status 200 so clients read the error from the body; anything else is internal.
func FromDomain(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	var unsupported *domain.UnsupportedFormatError
	if stderrors.As(err, &unsupported) {
		return &AppError{
			Type:       ErrorTypeUnsupported,
			Message:    unsupported.Error(),
			StatusCode: http.StatusOK,
			Cause:      err,
		}
	}

	var archiveErr *domain.ArchiveError
	if stderrors.As(err, &archiveErr) {
		return &AppError{
			Type:       ErrorTypeArchive,
			Message:    archiveErr.Error(),
			StatusCode: http.StatusOK,
			Cause:      err,
		}
	}

	var extractionErr *domain.ExtractionError
	if stderrors.As(err, &extractionErr) {
		return &AppError{
			Type:       ErrorTypeExtraction,
			Message:    extractionErr.Error(),
			StatusCode: http.StatusOK,
			Cause:      err,
		}
	}

	return NewInternalError(err.Error(), err)
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}
