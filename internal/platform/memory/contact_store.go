package memory

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/agenda-api/internal/domain"
	"github.com/phrazzld/agenda-api/internal/platform/logger"
	"github.com/phrazzld/agenda-api/internal/store"
)

const memoryContactStoreComponent = "memory_contact_store"

var _ store.ContactStore = (*ContactStore)(nil)

// ContactStore is a thread-safe in-memory store.ContactStore.
type ContactStore struct {
	mu       sync.RWMutex
	contacts map[uuid.UUID]domain.Contact
	order    []uuid.UUID
	logger   *slog.Logger
}

// NewContactStore creates an empty ContactStore.
// If logger is nil, a default logger will be used.
func NewContactStore(logger *slog.Logger) *ContactStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactStore{
		contacts: make(map[uuid.UUID]domain.Contact),
		logger:   logger,
	}
}

// Create stores a copy of contact. The duplicate check and the write happen
// under the same lock.
func (s *ContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasNameAndPhone(contact.Name, contact.Phone, uuid.Nil) {
		return store.ErrContactExists
	}

	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	now := time.Now().UTC()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	s.contacts[contact.ID] = *contact
	s.order = append(s.order, contact.ID)

	logger.ForComponent(ctx, s.logger, memoryContactStoreComponent).Debug("contact stored",
		slog.String("contact_id", contact.ID.String()))
	return nil
}

// List returns all contacts in insertion order.
func (s *ContactStore) List(ctx context.Context) ([]*domain.Contact, error) {
	return s.filter(func(domain.Contact) bool { return true }), nil
}

// GetByID returns a copy of the contact with the given id.
func (s *ContactStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contact, ok := s.contacts[id]
	if !ok {
		return nil, store.ErrContactNotFound
	}
	return &contact, nil
}

// ExistsByID reports whether id is stored.
func (s *ContactStore) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.contacts[id]
	return ok, nil
}

// ExistsByNameAndPhone reports whether a contact has exactly this name and phone.
func (s *ContactStore) ExistsByNameAndPhone(ctx context.Context, name, phone string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hasNameAndPhone(name, phone, uuid.Nil), nil
}

// FindByNameContaining matches name case-insensitively.
func (s *ContactStore) FindByNameContaining(ctx context.Context, fragment string) ([]*domain.Contact, error) {
	needle := strings.ToLower(fragment)
	return s.filter(func(c domain.Contact) bool {
		return strings.Contains(strings.ToLower(c.Name), needle)
	}), nil
}

// FindByEmailContaining matches email case-insensitively.
func (s *ContactStore) FindByEmailContaining(ctx context.Context, fragment string) ([]*domain.Contact, error) {
	needle := strings.ToLower(fragment)
	return s.filter(func(c domain.Contact) bool {
		return strings.Contains(strings.ToLower(c.Email), needle)
	}), nil
}

// Update replaces the stored name, phone and email. CreatedAt is kept.
func (s *ContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.contacts[contact.ID]
	if !ok {
		return store.ErrContactNotFound
	}
	if s.hasNameAndPhone(contact.Name, contact.Phone, contact.ID) {
		return store.ErrContactExists
	}

	existing.Name = contact.Name
	existing.Phone = contact.Phone
	existing.Email = contact.Email
	existing.UpdatedAt = time.Now().UTC()
	s.contacts[contact.ID] = existing

	contact.CreatedAt = existing.CreatedAt
	contact.UpdatedAt = existing.UpdatedAt
	return nil
}

// Delete removes the contact with the given id.
func (s *ContactStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contacts[id]; !ok {
		return store.ErrContactNotFound
	}
	delete(s.contacts, id)
	s.order = removeID(s.order, id)

	logger.ForComponent(ctx, s.logger, memoryContactStoreComponent).Debug("contact removed",
		slog.String("contact_id", id.String()))
	return nil
}

// hasNameAndPhone must be called with s.mu held. except is ignored in the scan.
func (s *ContactStore) hasNameAndPhone(name, phone string, except uuid.UUID) bool {
	for id, c := range s.contacts {
		if id != except && c.Name == name && c.Phone == phone {
			return true
		}
	}
	return false
}

func (s *ContactStore) filter(keep func(domain.Contact) bool) []*domain.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Contact, 0, len(s.order))
	for _, id := range s.order {
		c := s.contacts[id]
		if keep(c) {
			result = append(result, &c)
		}
	}
	return result
}

func removeID(ids []uuid.UUID, target uuid.UUID) []uuid.UUID {
	for i, id := range ids {
		if id == target {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
