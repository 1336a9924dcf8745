package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for different failure classes
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeBusiness   ErrorType = "business"
	ErrorTypeInternal   ErrorType = "internal"
)

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType              `json:"type"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// Error constructors
func NewValidationError(code, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

func NewBusinessError(code, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeBusiness,
		Code:    code,
		Message: message,
	}
}

func NewInternalError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Code:    "INTERNAL_ERROR",
		Message: message,
	}
}

// NewMissingColumnError reports every required column absent from the input,
// so the caller can surface all of them in one pass.
func NewMissingColumnError(columns []string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Code:    "MISSING_COLUMN",
		Message: fmt.Sprintf("input is missing required columns: %s", strings.Join(columns, ", ")),
		Details: map[string]interface{}{"columns": columns},
	}
}

// NewEmptyInputError reports an input table with a header but no data rows.
func NewEmptyInputError() *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Code:    "EMPTY_INPUT",
		Message: "input table has no data rows",
	}
}

// NewMalformedInputError reports input that could not be parsed as tabular data.
func NewMalformedInputError(cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Code:    "MALFORMED_INPUT",
		Message: "input could not be parsed as tabular data",
		Cause:   cause,
	}
}

// Wrap wraps an error with a message using fmt.Errorf with %w
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsType checks if an error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// Code extracts the machine-readable code from an error, or "" for plain errors.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
