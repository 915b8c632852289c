package errors

import (
	"net/http"

	"steamcache/internal/errors"
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

// Is matches any BaseError with the same error code, so detailed copies still
// compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)

	return ok && other.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Store and upstream failures
	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"The local store is unavailable",
		"",
	)

	ErrUpstreamUnavailable = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_UNAVAILABLE",
		"Steam did not answer the request",
		"",
	)

	ErrInvalidPayload = NewBaseError(
		http.StatusBadGateway,
		"INVALID_PAYLOAD",
		"Steam returned an incomplete payload",
		"",
	)

	// Request errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidAppID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_APP_ID",
		"Application id must be numeric",
		"",
	)

	ErrInvalidCursor = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CURSOR",
		"Cursor is malformed",
		"",
	)

	ErrSearchTermTooShort = NewBaseError(
		http.StatusBadRequest,
		"SEARCH_TERM_TOO_SHORT",
		"Search term is too short",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"Password is too short",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	// Catalog errors
	ErrGameNotFound = NewBaseError(
		http.StatusNotFound,
		"GAME_NOT_FOUND",
		"Game not found",
		"",
	)

	ErrFavoriteNotFound = NewBaseError(
		http.StatusNotFound,
		"FAVORITE_NOT_FOUND",
		"Favorite not found",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// StoreError reports a failed store operation as StoreUnavailable while keeping the driver error.
type StoreError struct {
	err     error
	details string
}

// NewStoreError wraps a driver error raised by the entity store
func NewStoreError(err error, details string) AppError {
	return &StoreError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the driver error
func (e *StoreError) Unwrap() error {
	return e.err
}

// Is matches ErrStoreUnavailable
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

// HTTPCode returns the HTTP status code
func (e *StoreError) HTTPCode() int {
	return ErrStoreUnavailable.HTTPCode()
}

// ErrorCode returns the business error code
func (e *StoreError) ErrorCode() string {
	return ErrStoreUnavailable.ErrorCode()
}

// Message returns the user-friendly error message
func (e *StoreError) Message() string {
	return ErrStoreUnavailable.Message()
}

// Details returns detailed error information
func (e *StoreError) Details() string {
	return e.details
}

// UpstreamError reports a failed or unsuccessful Steam call.
type UpstreamError struct {
	err        error
	operation  string
	statusCode int
}

// NewUpstreamError wraps a transport error or a non-success envelope.
// statusCode is zero when no HTTP response was received.
func NewUpstreamError(operation string, statusCode int, err error) AppError {
	if err == nil {
		err = errors.New("unsuccessful response")
	}

	return &UpstreamError{
		err:        err,
		operation:  operation,
		statusCode: statusCode,
	}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.statusCode != 0 {
		return errors.Wrapf(e.err, "%s: status %d", e.operation, e.statusCode).Error()
	}

	return errors.Wrap(e.err, e.operation).Error()
}

// Unwrap exposes the transport error
func (e *UpstreamError) Unwrap() error {
	return e.err
}

// Is matches ErrUpstreamUnavailable
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstreamUnavailable
}

// StatusCode returns the upstream HTTP status, zero when none was received
func (e *UpstreamError) StatusCode() int {
	return e.statusCode
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return ErrUpstreamUnavailable.HTTPCode()
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return ErrUpstreamUnavailable.ErrorCode()
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	return ErrUpstreamUnavailable.Message()
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return e.operation
}

// IsUpstreamFailure reports errors that trigger the metadata placeholder fallback.
// An invalid payload counts as an unavailable upstream.
func IsUpstreamFailure(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable) || errors.Is(err, ErrInvalidPayload)
}

// IsRetryable reports infrastructure failures worth retrying from a job queue.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable) || errors.Is(err, ErrUpstreamUnavailable)
}
