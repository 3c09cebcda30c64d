package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/agenda-api/internal/domain"
	"github.com/phrazzld/agenda-api/internal/platform/logger"
	"github.com/phrazzld/agenda-api/internal/store"
)

const contactServiceComponent = "contact_service"

// ContactInput carries the caller-supplied fields of a contact.
type ContactInput struct {
	Name  string
	Phone string
	Email string
}

// ContactService provides contact-related operations
type ContactService interface {
	// Create stores a new contact.
	// Returns ErrContactConflict if a contact with the same name and phone exists.
	Create(ctx context.Context, input ContactInput) (*domain.Contact, error)

	// List returns every contact in store order.
	List(ctx context.Context) ([]*domain.Contact, error)

	// Search filters by name when name is non-empty, otherwise by email when
	// email is non-empty, otherwise returns List. Matching ignores case.
	Search(ctx context.Context, name, email string) ([]*domain.Contact, error)

	// Get retrieves a contact by ID.
	// Returns ErrContactNotFound if it does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.Contact, error)

	// Update overwrites name, phone and email of an existing contact.
	// Returns ErrContactNotFound if it does not exist.
	Update(ctx context.Context, id uuid.UUID, input ContactInput) (*domain.Contact, error)

	// Delete removes a contact.
	// Returns ErrContactNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

const contactServiceName = "contact"

// contactServiceImpl implements the ContactService interface
type contactServiceImpl struct {
	contactStore store.ContactStore
	logger       *slog.Logger
}

// NewContactService creates a new ContactService.
// It returns an error if contactStore is nil.
func NewContactService(contactStore store.ContactStore, logger *slog.Logger) (ContactService, error) {
	if contactStore == nil {
		return nil, &ServiceError{
			Service:   contactServiceName,
			Operation: "create_service",
			Message:   "contactStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &contactServiceImpl{
		contactStore: contactStore,
		logger:       logger,
	}, nil
}

// Create implements ContactService.Create
func (s *contactServiceImpl) Create(ctx context.Context, input ContactInput) (*domain.Contact, error) {
	log := logger.ForComponent(ctx, s.logger, contactServiceComponent)

	contact, err := domain.NewContact(input.Name, input.Phone, input.Email)
	if err != nil {
		log.Debug("rejected invalid contact", slog.String("error", err.Error()))
		return nil, err
	}

	exists, err := s.contactStore.ExistsByNameAndPhone(ctx, contact.Name, contact.Phone)
	if err != nil {
		log.Error("failed to check for duplicate contact", slog.String("error", err.Error()))
		return nil, NewServiceError(contactServiceName, "create", "failed to check duplicates", err)
	}
	if exists {
		log.Debug("duplicate contact rejected", slog.String("name", contact.Name))
		return nil, ErrContactConflict
	}

	// A concurrent writer can still win the race; the store reports it as
	// ErrContactExists, which NewServiceError maps to ErrContactConflict.
	if err := s.contactStore.Create(ctx, contact); err != nil {
		log.Error("failed to create contact", slog.String("error", err.Error()))
		return nil, NewServiceError(contactServiceName, "create", "failed to save contact", err)
	}

	log.Info("contact created", slog.String("contact_id", contact.ID.String()))
	return contact, nil
}

// List implements ContactService.List
func (s *contactServiceImpl) List(ctx context.Context) ([]*domain.Contact, error) {
	contacts, err := s.contactStore.List(ctx)
	if err != nil {
		logger.ForComponent(ctx, s.logger, contactServiceComponent).Error("failed to list contacts",
			slog.String("error", err.Error()))
		return nil, NewServiceError(contactServiceName, "list", "failed to list contacts", err)
	}
	return contacts, nil
}

// Search implements ContactService.Search
func (s *contactServiceImpl) Search(ctx context.Context, name, email string) ([]*domain.Contact, error) {
	var (
		contacts []*domain.Contact
		err      error
	)

	switch {
	case name != "":
		contacts, err = s.contactStore.FindByNameContaining(ctx, name)
	case email != "":
		contacts, err = s.contactStore.FindByEmailContaining(ctx, email)
	default:
		return s.List(ctx)
	}

	if err != nil {
		logger.ForComponent(ctx, s.logger, contactServiceComponent).Error("failed to search contacts",
			slog.String("error", err.Error()))
		return nil, NewServiceError(contactServiceName, "search", "failed to search contacts", err)
	}
	return contacts, nil
}

// Get implements ContactService.Get
func (s *contactServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	contact, err := s.contactStore.GetByID(ctx, id)
	if err != nil {
		return nil, NewServiceError(contactServiceName, "get", "failed to retrieve contact", err)
	}
	return contact, nil
}

// Update implements ContactService.Update
func (s *contactServiceImpl) Update(
	ctx context.Context,
	id uuid.UUID,
	input ContactInput,
) (*domain.Contact, error) {
	log := logger.ForComponent(ctx, s.logger, contactServiceComponent).
		With(slog.String("contact_id", id.String()))

	candidate := domain.Contact{Name: input.Name, Phone: input.Phone, Email: input.Email}
	if err := candidate.Validate(); err != nil {
		log.Debug("rejected invalid contact update", slog.String("error", err.Error()))
		return nil, err
	}

	contact, err := s.contactStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("contact not found for update")
		} else {
			log.Error("failed to load contact for update", slog.String("error", err.Error()))
		}
		return nil, NewServiceError(contactServiceName, "update", "failed to retrieve contact", err)
	}

	if err := contact.Replace(input.Name, input.Phone, input.Email); err != nil {
		return nil, err
	}

	if err := s.contactStore.Update(ctx, contact); err != nil {
		log.Error("failed to update contact", slog.String("error", err.Error()))
		return nil, NewServiceError(contactServiceName, "update", "failed to save contact", err)
	}

	log.Info("contact updated")
	return contact, nil
}

// Delete implements ContactService.Delete
func (s *contactServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.ForComponent(ctx, s.logger, contactServiceComponent).
		With(slog.String("contact_id", id.String()))

	exists, err := s.contactStore.ExistsByID(ctx, id)
	if err != nil {
		log.Error("failed to check contact existence", slog.String("error", err.Error()))
		return NewServiceError(contactServiceName, "delete", "failed to check contact", err)
	}
	if !exists {
		log.Debug("contact not found for delete")
		return ErrContactNotFound
	}

	if err := s.contactStore.Delete(ctx, id); err != nil {
		log.Error("failed to delete contact", slog.String("error", err.Error()))
		return NewServiceError(contactServiceName, "delete", "failed to delete contact", err)
	}

	log.Info("contact deleted")
	return nil
}
