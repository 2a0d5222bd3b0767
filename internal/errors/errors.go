package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Common error types that can be used across the application
var (
	ErrNotFound          = New(ErrCodeNotFound, "resource not found")
	ErrAlreadyExists     = New(ErrCodeAlreadyExists, "resource already exists")
	ErrValidation        = New(ErrCodeValidation, "validation error")
	ErrInvalidOperation  = New(ErrCodeInvalidOperation, "invalid operation")
	ErrIllegalTransition = New(ErrCodeIllegalTransition, "illegal lifecycle transition")
	ErrPartialPersist    = New(ErrCodePartialPersist, "partial persist failure")
	ErrExternalLookup    = New(ErrCodeExternalLookup, "external lookup failure")
	ErrHTTPClient        = New(ErrCodeHTTPClient, "http client error")
	ErrSystem            = New(ErrCodeSystemError, "system error")
	// maps errors to http status codes
	statusCodeMap = map[error]int{
		ErrHTTPClient:        http.StatusBadGateway,
		ErrExternalLookup:    http.StatusBadGateway,
		ErrPartialPersist:    http.StatusBadGateway,
		ErrNotFound:          http.StatusNotFound,
		ErrAlreadyExists:     http.StatusConflict,
		ErrIllegalTransition: http.StatusConflict,
		ErrValidation:        http.StatusBadRequest,
		ErrInvalidOperation:  http.StatusBadRequest,
		ErrSystem:            http.StatusInternalServerError,
	}
)

const (
	ErrCodeHTTPClient        = "http_client_error"
	ErrCodeSystemError       = "system_error"
	ErrCodeNotFound          = "not_found"
	ErrCodeAlreadyExists     = "already_exists"
	ErrCodeValidation        = "validation_error"
	ErrCodeInvalidOperation  = "invalid_operation"
	ErrCodeIllegalTransition = "illegal_transition"
	ErrCodePartialPersist    = "partial_persist_failure"
	ErrCodeExternalLookup    = "external_lookup_failure"
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Op      string // Logical operation name
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

// New creates a new InternalError
func New(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidOperation checks if an error is an invalid operation error
func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}

// IsIllegalTransition checks if an error is an illegal lifecycle transition error
func IsIllegalTransition(err error) bool {
	return errors.Is(err, ErrIllegalTransition)
}

// IsPartialPersist checks if an error is a partial persist failure
func IsPartialPersist(err error) bool {
	return errors.Is(err, ErrPartialPersist)
}

// IsExternalLookup checks if an error is an external lookup failure
func IsExternalLookup(err error) bool {
	return errors.Is(err, ErrExternalLookup)
}

// IsHTTPClient checks if an error is an http client error
func IsHTTPClient(err error) bool {
	return errors.Is(err, ErrHTTPClient)
}

func HTTPStatusFromErr(err error) int {
	for e, status := range statusCodeMap {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}
