package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/agenda-api/internal/domain"
	"github.com/phrazzld/agenda-api/internal/platform/logger"
	"github.com/phrazzld/agenda-api/internal/store"
)

const contactStoreComponent = "contact_store"

const contactColumns = `id, name, phone, email, created_at, updated_at`

// PostgresContactStore implements the store.ContactStore interface
// using a PostgreSQL database as the storage backend.
type PostgresContactStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresContactStore creates a new PostgreSQL implementation of the ContactStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresContactStore(db store.DBTX, logger *slog.Logger) *PostgresContactStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresContactStore{
		db:     db,
		logger: logger,
	}
}

// Ensure PostgresContactStore implements store.ContactStore interface
var _ store.ContactStore = (*PostgresContactStore)(nil)

// WithTx returns a store that runs its queries on tx.
func (s *PostgresContactStore) WithTx(tx *sql.Tx) *PostgresContactStore {
	return &PostgresContactStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.ContactStore.Create.
// The unique index on (name, phone) makes the duplicate check atomic;
// a violation is returned as store.ErrContactExists.
func (s *PostgresContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	log := logger.ForComponent(ctx, s.logger, contactStoreComponent)

	if err := contact.Validate(); err != nil {
		log.Warn("contact validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	now := time.Now().UTC()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	query := `
		INSERT INTO contacts (id, name, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		contact.ID,
		contact.Name,
		contact.Phone,
		contact.Email,
		contact.CreatedAt,
		contact.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("duplicate contact rejected by unique index",
				slog.String("contact_id", contact.ID.String()))
			return store.ErrContactExists
		}

		log.Error("failed to create contact",
			slog.String("error", err.Error()),
			slog.String("contact_id", contact.ID.String()))
		return store.NewStoreError("contact", "create", "failed to insert contact", MapError(err))
	}

	log.Info("contact created successfully",
		slog.String("contact_id", contact.ID.String()))
	return nil
}

// List implements store.ContactStore.List.
func (s *PostgresContactStore) List(ctx context.Context) ([]*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts ORDER BY seq`
	return s.queryContacts(ctx, "list", query)
}

// GetByID implements store.ContactStore.GetByID.
// Returns store.ErrContactNotFound if the contact does not exist.
func (s *PostgresContactStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	log := logger.ForComponent(ctx, s.logger, contactStoreComponent)

	log.Debug("retrieving contact by ID", slog.String("contact_id", id.String()))

	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`

	contact, err := scanContact(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("contact not found", slog.String("contact_id", id.String()))
			return nil, store.ErrContactNotFound
		}
		log.Error("failed to get contact by ID",
			slog.String("error", err.Error()),
			slog.String("contact_id", id.String()))
		return nil, store.NewStoreError("contact", "get", "failed to query contact", err)
	}

	return contact, nil
}

// ExistsByID implements store.ContactStore.ExistsByID.
func (s *PostgresContactStore) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM contacts WHERE id = $1)`
	return s.queryExists(ctx, "exists_by_id", query, id)
}

// ExistsByNameAndPhone implements store.ContactStore.ExistsByNameAndPhone.
func (s *PostgresContactStore) ExistsByNameAndPhone(ctx context.Context, name, phone string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM contacts WHERE name = $1 AND phone = $2)`
	return s.queryExists(ctx, "exists_by_name_and_phone", query, name, phone)
}

// FindByNameContaining implements store.ContactStore.FindByNameContaining.
func (s *PostgresContactStore) FindByNameContaining(
	ctx context.Context,
	fragment string,
) ([]*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts
		WHERE name ILIKE $1 ESCAPE '\'
		ORDER BY seq`
	return s.queryContacts(ctx, "find_by_name", query, containsPattern(fragment))
}

// FindByEmailContaining implements store.ContactStore.FindByEmailContaining.
func (s *PostgresContactStore) FindByEmailContaining(
	ctx context.Context,
	fragment string,
) ([]*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts
		WHERE email ILIKE $1 ESCAPE '\'
		ORDER BY seq`
	return s.queryContacts(ctx, "find_by_email", query, containsPattern(fragment))
}

// Update implements store.ContactStore.Update.
// Returns store.ErrContactNotFound if the contact does not exist and
// store.ErrContactExists if the new name and phone belong to another contact.
func (s *PostgresContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	log := logger.ForComponent(ctx, s.logger, contactStoreComponent)

	if err := contact.Validate(); err != nil {
		log.Warn("contact validation failed during update",
			slog.String("error", err.Error()),
			slog.String("contact_id", contact.ID.String()))
		return err
	}

	contact.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE contacts
		SET name = $1, phone = $2, email = $3, updated_at = $4
		WHERE id = $5
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		contact.Name,
		contact.Phone,
		contact.Email,
		contact.UpdatedAt,
		contact.ID,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("contact update collides with existing name and phone",
				slog.String("contact_id", contact.ID.String()))
			return store.ErrContactExists
		}
		log.Error("failed to update contact",
			slog.String("error", err.Error()),
			slog.String("contact_id", contact.ID.String()))
		return store.NewStoreError("contact", "update", "failed to update contact", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrContactNotFound); err != nil {
		log.Debug("contact not found for update",
			slog.String("contact_id", contact.ID.String()))
		return err
	}

	log.Info("contact updated successfully",
		slog.String("contact_id", contact.ID.String()))
	return nil
}

// Delete implements store.ContactStore.Delete.
// Returns store.ErrContactNotFound if no row was deleted.
func (s *PostgresContactStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.ForComponent(ctx, s.logger, contactStoreComponent)

	result, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete contact",
			slog.String("error", err.Error()),
			slog.String("contact_id", id.String()))
		return store.NewStoreError("contact", "delete", "failed to delete contact", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrContactNotFound); err != nil {
		log.Debug("contact not found for delete", slog.String("contact_id", id.String()))
		return err
	}

	log.Info("contact deleted successfully", slog.String("contact_id", id.String()))
	return nil
}

func (s *PostgresContactStore) queryExists(
	ctx context.Context,
	operation string,
	query string,
	args ...any,
) (bool, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		logger.ForComponent(ctx, s.logger, contactStoreComponent).Error("failed to check contact existence",
			slog.String("error", err.Error()),
			slog.String("operation", operation))
		return false, store.NewStoreError("contact", operation, "failed to check existence", err)
	}
	return exists, nil
}

func (s *PostgresContactStore) queryContacts(
	ctx context.Context,
	operation string,
	query string,
	args ...any,
) ([]*domain.Contact, error) {
	log := logger.ForComponent(ctx, s.logger, contactStoreComponent)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query contacts",
			slog.String("error", err.Error()),
			slog.String("operation", operation))
		return nil, store.NewStoreError("contact", operation, "failed to query contacts", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	contacts := []*domain.Contact{}
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			log.Error("failed to scan contact row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("contact", operation, "failed to scan contact", err)
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("contact", operation, "failed to iterate contacts", err)
	}

	log.Debug("contacts retrieved",
		slog.String("operation", operation),
		slog.Int("count", len(contacts)))
	return contacts, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (*domain.Contact, error) {
	var c domain.Contact
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
