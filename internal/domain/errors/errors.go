package errors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information. The copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"invalid input",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"no active session",
		"",
	)

	ErrInvalidSession = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SESSION",
		"session requires a user and a token",
		"",
	)

	ErrStoreNotIdentified = NewBaseError(
		http.StatusBadRequest,
		"STORE_NOT_IDENTIFIED",
		"store could not be identified",
		"",
	)

	ErrUnexpectedShape = NewBaseError(
		http.StatusBadGateway,
		"UNEXPECTED_RESPONSE_SHAPE",
		"unexpected response shape",
		"",
	)

	ErrFileUnreadable = NewBaseError(
		http.StatusBadRequest,
		"FILE_UNREADABLE",
		"selected file could not be read",
		"",
	)

	ErrLocationUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"LOCATION_UNAVAILABLE",
		"current location is not available",
		"",
	)

	// Server-side errors used by the sandbox backend
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"forbidden",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"email already registered",
		"",
	)

	ErrSlugTaken = NewBaseError(
		http.StatusConflict,
		"SLUG_TAKEN",
		"slug already in use",
		"",
	)
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Method     string
	Path       string

	// Payload is the parsed error body, nil when the body was not JSON.
	Payload *ErrorBody

	// Message is the most specific human-readable message available.
	Message string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// NewAPIError builds an APIError, deriving Message from the payload when possible.
func NewAPIError(method, path string, status int, payload *ErrorBody) *APIError {
	msg := ""
	if payload != nil {
		msg = payload.FirstMessage()
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	if msg == "" {
		msg = "request failed"
	}

	return &APIError{
		StatusCode: status,
		Method:     method,
		Path:       path,
		Payload:    payload,
		Message:    msg,
	}
}

// TransportError is a request that never produced an HTTP response, timeouts included.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status of err when it is an APIError, otherwise 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}

// UserMessage returns the message to show in a blocking alert for err.
// Server messages and local validation messages win over the fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Payload != nil {
		if msg := apiErr.Payload.FirstMessage(); msg != "" {
			return msg
		}
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		if appErr.Details() != "" {
			return appErr.Details()
		}

		return appErr.Message()
	}

	return fallback
}
