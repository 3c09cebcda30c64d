package api

import (
	"time"

	"github.com/phrazzld/agenda-api/internal/domain"
)

// ContactRequest is the body of POST /api/contacts and PUT /api/contacts/{id}.
type ContactRequest struct {
	Name  string `json:"name"  validate:"required,max=255"`
	Phone string `json:"phone" validate:"required,max=50"`
	Email string `json:"email" validate:"max=255"`
}

// ContactResponse is the JSON representation of a contact.
type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TaskRequest is the optional JSON body of POST /api/tasks.
// The title may also be given as a query or form parameter.
type TaskRequest struct {
	Title string `json:"title"`
}

// TaskResponse is the JSON representation of a task.
type TaskResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func contactToResponse(c *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func contactsToResponse(contacts []*domain.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, contactToResponse(c))
	}
	return out
}

func taskToResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:        t.ID.String(),
		Title:     t.Title,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskToResponse(t))
	}
	return out
}
