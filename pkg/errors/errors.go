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

	// Annotation formatting errors
	ErrInvalidSeparator  ErrorCode = "INVALID_SEPARATOR"
	ErrInvalidDataShape  ErrorCode = "INVALID_DATA_SHAPE"
	ErrInvalidTag        ErrorCode = "INVALID_TAG"
	ErrInvalidOutputPath ErrorCode = "INVALID_OUTPUT_PATH"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Layer file errors
	ErrLayerParse   ErrorCode = "LAYER_PARSE"
	ErrLayerInvalid ErrorCode = "LAYER_INVALID"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileRead     ErrorCode = "FILE_READ"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"

	// Archive errors
	ErrArchiveCreate ErrorCode = "ARCHIVE_CREATE"

	// Transport errors
	ErrRequest ErrorCode = "REQUEST"
	ErrRemote  ErrorCode = "REMOTE_FAILURE"
)

// ItolError represents a structured error with code and details
type ItolError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ItolError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ItolError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ItolError) Is(target error) bool {
	var targetErr *ItolError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ItolError with the given code and message
func New(code ErrorCode, message string) *ItolError {
	return &ItolError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ItolError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ItolError {
	return &ItolError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an ItolError
func Wrap(err error, code ErrorCode, message string) *ItolError {
	if err == nil {
		return nil
	}
	return &ItolError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ItolError {
	if err == nil {
		return nil
	}
	return &ItolError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ItolError) WithDetail(key string, value interface{}) *ItolError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var itolErr *ItolError
	if errors.As(err, &itolErr) {
		return itolErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an ItolError
func GetErrorCode(err error) ErrorCode {
	var itolErr *ItolError
	if errors.As(err, &itolErr) {
		return itolErr.Code
	}
	return ErrUnknown
}
