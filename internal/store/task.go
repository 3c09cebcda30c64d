package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/agenda-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task, assigning its ID and timestamps.
	Create(ctx context.Context, task *domain.Task) error

	// List returns every stored task in insertion order.
	List(ctx context.Context) ([]*domain.Task, error)

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Update saves the title and completion flag of an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task by ID.
	// Returns ErrTaskNotFound if nothing was removed.
	Delete(ctx context.Context, id uuid.UUID) error
}
