package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/agenda-api/internal/domain"
	"github.com/phrazzld/agenda-api/internal/platform/logger"
	"github.com/phrazzld/agenda-api/internal/store"
)

const memoryTaskStoreComponent = "memory_task_store"

var _ store.TaskStore = (*TaskStore)(nil)

// TaskStore is a thread-safe in-memory store.TaskStore.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  map[uuid.UUID]domain.Task
	order  []uuid.UUID
	logger *slog.Logger
}

// NewTaskStore creates an empty TaskStore.
func NewTaskStore(logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskStore{
		tasks:  make(map[uuid.UUID]domain.Task),
		logger: logger,
	}
}

func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	s.tasks[task.ID] = *task
	s.order = append(s.order, task.ID)

	logger.ForComponent(ctx, s.logger, memoryTaskStoreComponent).Debug("task stored",
		slog.String("task_id", task.ID.String()))
	return nil
}

func (s *TaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Task, 0, len(s.order))
	for _, id := range s.order {
		t := s.tasks[id]
		result = append(result, &t)
	}
	return result, nil
}

func (s *TaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return &task, nil
}

func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tasks[task.ID]
	if !ok {
		return store.ErrTaskNotFound
	}

	existing.Title = task.Title
	existing.Completed = task.Completed
	existing.UpdatedAt = time.Now().UTC()
	s.tasks[task.ID] = existing

	task.CreatedAt = existing.CreatedAt
	task.UpdatedAt = existing.UpdatedAt
	return nil
}

func (s *TaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(s.tasks, id)
	s.order = removeID(s.order, id)
	return nil
}
