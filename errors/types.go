package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Dataset errors
	ErrCodeDatasetInvalid  ErrorCode = "DATASET_INVALID"
	ErrCodeDatasetEmpty    ErrorCode = "DATASET_EMPTY"
	ErrCodeDatasetNotFound ErrorCode = "DATASET_NOT_FOUND"

	// Cursor errors
	ErrCodeIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"
	ErrCodeInvalidIndex    ErrorCode = "INVALID_INDEX"

	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// NavError represents a structured error with context
type NavError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *NavError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *NavError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *NavError) WithDetail(key string, value interface{}) *NavError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *NavError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new NavError
func New(code ErrorCode, message string) *NavError {
	return &NavError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a NavError
func Wrap(err error, code ErrorCode, message string) *NavError {
	return &NavError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific NavError code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	navErr, ok := err.(*NavError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	return navErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	navErr, ok := err.(*NavError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return navErr.Code
}
