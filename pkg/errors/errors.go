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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Navigation handle errors
	ErrNoHandle ErrorCode = "NO_HANDLE"

	// Tree and action errors
	ErrInvalidState   ErrorCode = "STATE_INVALID"
	ErrInvalidAction  ErrorCode = "ACTION_INVALID"
	ErrTargetNotFound ErrorCode = "TARGET_NOT_FOUND"
	ErrRouteNotFound  ErrorCode = "ROUTE_NOT_FOUND"

	// Snapshot errors
	ErrSnapshotDecode ErrorCode = "SNAPSHOT_DECODE"
	ErrSnapshotEncode ErrorCode = "SNAPSHOT_ENCODE"
)

// NavError represents a structured error with code and details
type NavError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *NavError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *NavError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *NavError) Is(target error) bool {
	var targetErr *NavError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new NavError with the given code and message
func New(code ErrorCode, message string) *NavError {
	return &NavError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new NavError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *NavError {
	return &NavError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a NavError
func Wrap(err error, code ErrorCode, message string) *NavError {
	if err == nil {
		return nil
	}
	return &NavError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *NavError {
	if err == nil {
		return nil
	}
	return &NavError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *NavError) WithDetail(key string, value interface{}) *NavError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var navErr *NavError
	if errors.As(err, &navErr) {
		return navErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a NavError
func GetErrorCode(err error) ErrorCode {
	var navErr *NavError
	if errors.As(err, &navErr) {
		return navErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a NavError
func GetErrorDetails(err error) map[string]interface{} {
	var navErr *NavError
	if errors.As(err, &navErr) {
		return navErr.Details
	}
	return nil
}
