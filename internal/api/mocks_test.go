package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/agenda-api/internal/domain"
	"github.com/phrazzld/agenda-api/internal/service"
)

// MockContactService is a mock implementation of service.ContactService for testing
type MockContactService struct {
	CreateFn func(ctx context.Context, input service.ContactInput) (*domain.Contact, error)
	ListFn   func(ctx context.Context) ([]*domain.Contact, error)
	SearchFn func(ctx context.Context, name, email string) ([]*domain.Contact, error)
	GetFn    func(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	UpdateFn func(ctx context.Context, id uuid.UUID, input service.ContactInput) (*domain.Contact, error)
	DeleteFn func(ctx context.Context, id uuid.UUID) error
}

func (m *MockContactService) Create(ctx context.Context, input service.ContactInput) (*domain.Contact, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, input)
	}
	return nil, nil
}

func (m *MockContactService) List(ctx context.Context) ([]*domain.Contact, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []*domain.Contact{}, nil
}

func (m *MockContactService) Search(ctx context.Context, name, email string) ([]*domain.Contact, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, name, email)
	}
	return []*domain.Contact{}, nil
}

func (m *MockContactService) Get(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, nil
}

func (m *MockContactService) Update(
	ctx context.Context,
	id uuid.UUID,
	input service.ContactInput,
) (*domain.Contact, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, input)
	}
	return nil, nil
}

func (m *MockContactService) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// MockTaskService is a mock implementation of service.TaskService for testing
type MockTaskService struct {
	CreateFn   func(ctx context.Context, title string) (*domain.Task, error)
	ListFn     func(ctx context.Context) ([]*domain.Task, error)
	CompleteFn func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	DeleteFn   func(ctx context.Context, id uuid.UUID) error
}

func (m *MockTaskService) Create(ctx context.Context, title string) (*domain.Task, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, title)
	}
	return nil, nil
}

func (m *MockTaskService) List(ctx context.Context) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []*domain.Task{}, nil
}

func (m *MockTaskService) Complete(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskService) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// newTestRouter mounts the handlers on the same paths the server uses, so
// chi fills in the path parameters.
func newTestRouter(contacts service.ContactService, tasks service.TaskService) http.Handler {
	contactHandler := NewContactHandler(contacts, nil)
	taskHandler := NewTaskHandler(tasks, nil)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Route("/contacts", func(r chi.Router) {
			r.Post("/", contactHandler.CreateContact)
			r.Get("/", contactHandler.ListContacts)
			r.Get("/{id}", contactHandler.GetContact)
			r.Put("/{id}", contactHandler.UpdateContact)
			r.Delete("/{id}", contactHandler.DeleteContact)
		})
		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", taskHandler.CreateTask)
			r.Get("/", taskHandler.ListTasks)
			r.Put("/{id}/complete", taskHandler.CompleteTask)
			r.Delete("/{id}", taskHandler.DeleteTask)
		})
	})
	return r
}
