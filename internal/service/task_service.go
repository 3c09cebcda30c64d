package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/agenda-api/internal/domain"
	"github.com/phrazzld/agenda-api/internal/platform/logger"
	"github.com/phrazzld/agenda-api/internal/store"
)

const taskServiceComponent = "task_service"

// TaskService provides task-related operations
type TaskService interface {
	// Create stores a new open task. The title is not validated.
	Create(ctx context.Context, title string) (*domain.Task, error)

	// List returns every task in store order.
	List(ctx context.Context) ([]*domain.Task, error)

	// Complete marks a task as done.
	// Returns ErrTaskNotFound if it does not exist.
	Complete(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Delete removes a task.
	// Returns ErrTaskNotFound if nothing was removed.
	Delete(ctx context.Context, id uuid.UUID) error
}

const taskServiceName = "task"

type taskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if taskStore is nil.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, &ServiceError{
			Service:   taskServiceName,
			Operation: "create_service",
			Message:   "taskStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		logger:    logger,
	}, nil
}

func (s *taskServiceImpl) Create(ctx context.Context, title string) (*domain.Task, error) {
	task := domain.NewTask(title)

	if err := s.taskStore.Create(ctx, task); err != nil {
		logger.ForComponent(ctx, s.logger, taskServiceComponent).Error("failed to create task",
			slog.String("error", err.Error()))
		return nil, NewServiceError(taskServiceName, "create", "failed to save task", err)
	}

	logger.ForComponent(ctx, s.logger, taskServiceComponent).Info("task created",
		slog.String("task_id", task.ID.String()))
	return task, nil
}

func (s *taskServiceImpl) List(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		logger.ForComponent(ctx, s.logger, taskServiceComponent).Error("failed to list tasks",
			slog.String("error", err.Error()))
		return nil, NewServiceError(taskServiceName, "list", "failed to list tasks", err)
	}
	return tasks, nil
}

// Complete loads the task first so a missing id never reaches the store's Update.
func (s *taskServiceImpl) Complete(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	log := logger.ForComponent(ctx, s.logger, taskServiceComponent).
		With(slog.String("task_id", id.String()))

	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found for completion")
		} else {
			log.Error("failed to load task", slog.String("error", err.Error()))
		}
		return nil, NewServiceError(taskServiceName, "complete", "failed to retrieve task", err)
	}

	task.Complete()

	if err := s.taskStore.Update(ctx, task); err != nil {
		log.Error("failed to save completed task", slog.String("error", err.Error()))
		return nil, NewServiceError(taskServiceName, "complete", "failed to save task", err)
	}

	log.Info("task completed")
	return task, nil
}

// Delete forwards to the store without an existence check; the store
// reports a missing row as store.ErrTaskNotFound.
func (s *taskServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.ForComponent(ctx, s.logger, taskServiceComponent).
		With(slog.String("task_id", id.String()))

	if err := s.taskStore.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found for delete")
		} else {
			log.Error("failed to delete task", slog.String("error", err.Error()))
		}
		return NewServiceError(taskServiceName, "delete", "failed to delete task", err)
	}

	log.Info("task deleted")
	return nil
}
