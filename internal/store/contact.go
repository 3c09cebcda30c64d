package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/agenda-api/internal/domain"
)

// ContactStore defines the interface for contact data persistence.
// All list-returning methods yield contacts in insertion order and never return nil slices.
type ContactStore interface {
	// Create saves a new contact, assigning its ID and timestamps.
	// Returns ErrContactExists if another contact has the same name and phone.
	Create(ctx context.Context, contact *domain.Contact) error

	// List returns every stored contact.
	List(ctx context.Context) ([]*domain.Contact, error)

	// GetByID retrieves a contact by its unique ID.
	// Returns ErrContactNotFound if the contact does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error)

	// ExistsByID reports whether a contact with the given ID is stored.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// ExistsByNameAndPhone reports whether a contact with exactly this name and phone is stored.
	ExistsByNameAndPhone(ctx context.Context, name, phone string) (bool, error)

	// FindByNameContaining returns contacts whose name contains fragment, ignoring case.
	FindByNameContaining(ctx context.Context, fragment string) ([]*domain.Contact, error)

	// FindByEmailContaining returns contacts whose email contains fragment, ignoring case.
	FindByEmailContaining(ctx context.Context, fragment string) ([]*domain.Contact, error)

	// Update replaces the name, phone and email of an existing contact.
	// Returns ErrContactNotFound if the contact does not exist and
	// ErrContactExists if the new name and phone belong to another contact.
	Update(ctx context.Context, contact *domain.Contact) error

	// Delete removes a contact by ID.
	// Returns ErrContactNotFound if nothing was removed.
	Delete(ctx context.Context, id uuid.UUID) error
}
