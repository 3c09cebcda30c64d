package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/agenda-api/internal/api/shared"
	"github.com/phrazzld/agenda-api/internal/domain"
	"github.com/phrazzld/agenda-api/internal/platform/logger"
)

// getPathUUID extracts a UUID from the URL path parameters.
// It returns a ValidationError if the parameter is missing or malformed.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// handlePathUUID extracts a UUID path parameter, writing a 400 response and
// returning false if it is missing or malformed.
func handlePathUUID(w http.ResponseWriter, r *http.Request, paramName string) (uuid.UUID, bool) {
	id, err := getPathUUID(r, paramName)
	if err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).Debug("invalid path parameter",
			slog.String("param_name", paramName),
			slog.String("value", chi.URLParam(r, paramName)))
		HandleAPIError(w, r, err, "")
		return uuid.Nil, false
	}
	return id, true
}

// respondDecodeError writes the client error for a body DecodeJSON rejected.
func respondDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, shared.ErrEmptyBody):
		shared.RespondWithError(w, r, http.StatusBadRequest, "Request body is required")
	case errors.Is(err, shared.ErrBodyTooLarge):
		shared.RespondWithError(w, r, http.StatusRequestEntityTooLarge, "Request body too large")
	default:
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
	}
}
