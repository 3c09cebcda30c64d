package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/agenda-api/internal/domain"
	"github.com/phrazzld/agenda-api/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent expected conditions that callers check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in ServiceError
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrContactConflict indicates that another contact already has the same name and phone.
	// API layer should map this to HTTP 409 Conflict.
	ErrContactConflict = errors.New("contact with this name and phone already exists")

	// ErrContactNotFound indicates that the contact does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrContactNotFound = errors.New("contact not found")

	// ErrTaskNotFound indicates that the task does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrTaskNotFound = errors.New("task not found")
)

// ServiceError wraps unexpected errors from a service with context.
type ServiceError struct {
	// Service is the service that failed (e.g., "contact", "task")
	Service string
	// Operation is the operation that failed (e.g., "create", "complete")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
// Known sentinel errors, including their store-level counterparts and
// validation errors, are returned directly without wrapping.
func NewServiceError(service, operation, message string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrContactConflict), errors.Is(err, store.ErrContactExists):
		return ErrContactConflict
	case errors.Is(err, ErrContactNotFound), errors.Is(err, store.ErrContactNotFound):
		return ErrContactNotFound
	case errors.Is(err, ErrTaskNotFound), errors.Is(err, store.ErrTaskNotFound):
		return ErrTaskNotFound
	case errors.Is(err, domain.ErrValidation):
		return err
	}

	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
