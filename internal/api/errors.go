package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/agenda-api/internal/api/shared"
	"github.com/phrazzld/agenda-api/internal/domain"
	"github.com/phrazzld/agenda-api/internal/service"
	"github.com/phrazzld/agenda-api/internal/store"
)

// Client-facing messages for the expected error conditions.
const (
	MsgContactConflict = "Contact with this name and phone already exists."
	MsgContactNotFound = "Contact not found."
	MsgTaskNotFound    = "Task not found"
	msgUnexpected      = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	// Conflict errors
	case errors.Is(err, service.ErrContactConflict),
		store.IsDuplicateError(err):
		return http.StatusConflict

	// Not found errors
	case errors.Is(err, service.ErrContactNotFound),
		errors.Is(err, service.ErrTaskNotFound),
		store.IsNotFoundError(err):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgUnexpected
	}

	var validationErr *domain.ValidationError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, service.ErrContactConflict),
		errors.Is(err, store.ErrContactExists):
		return MsgContactConflict

	case errors.Is(err, service.ErrContactNotFound),
		errors.Is(err, store.ErrContactNotFound):
		return MsgContactNotFound

	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrTaskNotFound):
		return MsgTaskNotFound

	case errors.As(err, &validationErr):
		if validationErr.Field == "" {
			return "Validation failed"
		}
		return fmt.Sprintf("Invalid %s: %s", validationErr.Field, validationErr.Message)

	case errors.As(err, &validationErrs):
		return SanitizeValidationError(validationErrs)

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID"

	case errors.Is(err, domain.ErrValidation):
		return "Validation failed"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return msgUnexpected
	}
}

// SanitizeValidationError turns validator errors into a short message naming
// the first offending field, without the validator's internal struct paths.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Validation error"
	}

	fe := validationErrs[0]
	return fmt.Sprintf("Invalid %s: %s", strings.ToLower(fe.Field()), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the error response for err. Expected errors get their
// safe message; unexpected ones (500) get defaultMsg so handlers can say
// which operation failed without exposing the cause.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)

	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMsg != "" {
		message = defaultMsg
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
