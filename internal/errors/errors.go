package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error // underlying error for wrapping
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is and errors.As
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is lets wrapped copies of a sentinel match the sentinel itself
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error with domain error context
func WrapError(domainErr *DomainError, err error) *DomainError {
	return &DomainError{
		Code:    domainErr.Code,
		Message: domainErr.Message,
		Err:     err,
	}
}

// Predefined domain errors
var (
	// User errors
	ErrUserNotFound       = NewDomainError("USER_NOT_FOUND", "user not found")
	ErrEmailExists        = NewDomainError("EMAIL_EXISTS", "a user with this email already exists")
	ErrInvalidCredentials = NewDomainError("INVALID_CREDENTIALS", "invalid email or password")

	// Authentication errors
	ErrAuthRequired = NewDomainError("AUTH_REQUIRED", "authentication token is required")
	ErrTokenExpired = NewDomainError("TOKEN_EXPIRED", "your session has expired, please login again")
	ErrInvalidToken = NewDomainError("INVALID_TOKEN", "invalid authentication token")

	// Authorization errors
	ErrForbidden = NewDomainError("FORBIDDEN", "you are not allowed to modify this report")

	// Report errors
	ErrReportNotFound   = NewDomainError("REPORT_NOT_FOUND", "missing person report not found")
	ErrCaseNumberExists = NewDomainError("CASE_NUMBER_EXISTS", "case number must be unique")
	ErrEmptyUpdate      = NewDomainError("EMPTY_UPDATE", "at least one updatable field is required")
	ErrInvalidStatus    = NewDomainError("INVALID_STATUS", "status must be one of: missing, found, closed")

	// System errors
	ErrInternal           = NewDomainError("INTERNAL_ERROR", "internal server error")
	ErrServiceUnavailable = NewDomainError("SERVICE_UNAVAILABLE", "service unavailable")
)

// IsDomainError checks if an error is a domain error
func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// ToHTTPStatus maps domain errors to HTTP status codes.
// This should only be used in the handler/presentation layer.
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErrorToHTTPStatus(domainErr)
	}

	return http.StatusInternalServerError
}

func domainErrorToHTTPStatus(err *DomainError) int {
	switch err.Code {
	// 400 Bad Request
	case "EMPTY_UPDATE", "INVALID_STATUS":
		return http.StatusBadRequest

	// 401 Unauthorized
	case "AUTH_REQUIRED", "INVALID_CREDENTIALS", "INVALID_TOKEN", "TOKEN_EXPIRED":
		return http.StatusUnauthorized

	// 403 Forbidden
	case "FORBIDDEN":
		return http.StatusForbidden

	// 404 Not Found
	case "USER_NOT_FOUND", "REPORT_NOT_FOUND":
		return http.StatusNotFound

	// 409 Conflict
	case "EMAIL_EXISTS", "CASE_NUMBER_EXISTS":
		return http.StatusConflict

	// 503 Service Unavailable
	case "SERVICE_UNAVAILABLE":
		return http.StatusServiceUnavailable

	// 500 Internal Server Error (default)
	default:
		return http.StatusInternalServerError
	}
}

// GetErrorMessage safely extracts a client-facing error message. Wrapped
// internals stay out of the response body.
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	return err.Error()
}
