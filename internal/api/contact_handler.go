package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/agenda-api/internal/api/shared"
	"github.com/phrazzld/agenda-api/internal/platform/logger"
	"github.com/phrazzld/agenda-api/internal/service"
)

const contactHandlerComponent = "contact_handler"

// ContactHandler handles contact-related HTTP requests
type ContactHandler struct {
	contactService service.ContactService
	logger         *slog.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService service.ContactService, logger *slog.Logger) *ContactHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// CreateContact handles POST /api/contacts requests
func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeContactRequest(w, r)
	if !ok {
		return
	}

	contact, err := h.contactService.Create(r.Context(), input)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create contact")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, contactToResponse(contact))
}

// ListContacts handles GET /api/contacts requests. The optional name and
// email query parameters filter the result; name takes precedence.
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	contacts, err := h.contactService.Search(r.Context(), query.Get("name"), query.Get("email"))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list contacts")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, contactsToResponse(contacts))
}

// GetContact handles GET /api/contacts/{id} requests
func (h *ContactHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	contact, err := h.contactService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get contact")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, contactToResponse(contact))
}

// UpdateContact handles PUT /api/contacts/{id} requests.
// The body replaces every field; an omitted email is cleared.
func (h *ContactHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	input, ok := h.decodeContactRequest(w, r)
	if !ok {
		return
	}

	contact, err := h.contactService.Update(r.Context(), id, input)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update contact")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, contactToResponse(contact))
}

// DeleteContact handles DELETE /api/contacts/{id} requests
func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.contactService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete contact")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ContactHandler) decodeContactRequest(
	w http.ResponseWriter,
	r *http.Request,
) (service.ContactInput, bool) {
	log := logger.ForComponent(r.Context(), h.logger, contactHandlerComponent)

	var req ContactRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		log.Debug("invalid contact request body", slog.String("error", err.Error()))
		respondDecodeError(w, r, err)
		return service.ContactInput{}, false
	}

	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "")
		return service.ContactInput{}, false
	}

	return service.ContactInput{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}, true
}
