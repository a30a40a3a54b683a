package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Catalog errors
	ErrEntryInvalid ErrorCode = "ENTRY_INVALID"
	ErrCatalogRead  ErrorCode = "CATALOG_READ"

	// Dat document errors
	ErrDatParse ErrorCode = "DAT_PARSE"
	ErrDatWrite ErrorCode = "DAT_WRITE"
)

// SieveError represents a structured error with code and details
type SieveError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SieveError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SieveError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SieveError) Is(target error) bool {
	var targetErr *SieveError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SieveError with the given code and message
func New(code ErrorCode, message string) *SieveError {
	return &SieveError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SieveError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SieveError {
	return &SieveError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SieveError
func Wrap(err error, code ErrorCode, message string) *SieveError {
	if err == nil {
		return nil
	}
	return &SieveError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SieveError {
	if err == nil {
		return nil
	}
	return &SieveError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SieveError) WithDetail(key string, value interface{}) *SieveError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var sieveErr *SieveError
	if errors.As(err, &sieveErr) {
		return sieveErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SieveError
func GetErrorCode(err error) ErrorCode {
	var sieveErr *SieveError
	if errors.As(err, &sieveErr) {
		return sieveErr.Code
	}
	return ErrUnknown
}
