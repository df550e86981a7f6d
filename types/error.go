package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unified error code across the library.
type ErrorCode string

// Resource resolution error codes
const (
	ErrTypeMismatch        ErrorCode = "TYPE_MISMATCH"
	ErrModuleNotFound      ErrorCode = "MODULE_NOT_FOUND"
	ErrResourceNotFound    ErrorCode = "RESOURCE_NOT_FOUND"
	ErrResourceIsDirectory ErrorCode = "RESOURCE_IS_DIRECTORY"
	ErrResourceNotAFile    ErrorCode = "RESOURCE_NOT_A_FILE"
)

// Parsing error codes
const (
	ErrDialectInferenceFailed ErrorCode = "DIALECT_INFERENCE_FAILED"
	ErrMalformedTable         ErrorCode = "MALFORMED_TABLE"
)

// Target selection error codes
const (
	ErrTargetNotFound        ErrorCode = "TARGET_NOT_FOUND"
	ErrTargetIndexOutOfRange ErrorCode = "TARGET_INDEX_OUT_OF_RANGE"
)

// Error represents a structured error with code, message, and an optional cause.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Errorf creates a new Error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithCause adds a cause to the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// GetErrorCode extracts the error code from an error, unwrapping as needed.
// Returns "" when no *Error is present in the chain.
func GetErrorCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsCode reports whether err carries the given code anywhere in its chain.
func IsCode(err error, code ErrorCode) bool {
	return GetErrorCode(err) == code
}
