package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is a to-do item. It starts open and can only move to completed.
type Task struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTask creates an unsaved, open Task. The title is not validated.
func NewTask(title string) *Task {
	return &Task{Title: title}
}

// Complete marks the task as done. Completing a completed task is allowed.
func (t *Task) Complete() {
	t.Completed = true
	t.UpdatedAt = time.Now().UTC()
}
