package dto

import (
	"github.com/jsamuelsen11/task-service/internal/domain"
	"github.com/jsamuelsen11/task-service/internal/domain/task"
)

// CreateTaskRequest represents the JSON body for creating a new task.
// Title is a pointer so that an absent field can be told apart from a
// present one.
type CreateTaskRequest struct {
	Title *string `json:"title"`
	Done  *bool   `json:"done,omitempty"`
}

// Validate checks that the title is present and valid.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTaskRequest) Validate() error {
	if r.Title == nil {
		return &domain.ValidationError{
			Fields: map[string]string{"title": domain.MsgRequired},
		}
	}
	t := r.ToTask()
	return t.Validate()
}

// ToTask converts the request to a domain Task. Done defaults to false.
func (r *CreateTaskRequest) ToTask() *task.Task {
	t := &task.Task{}
	if r.Title != nil {
		t.Title = *r.Title
	}
	if r.Done != nil {
		t.Done = *r.Done
	}
	return t
}

// UpdateTaskRequest represents the JSON body for updating an existing task.
// All fields are optional; nil means "do not change this field".
type UpdateTaskRequest struct {
	Title *string `json:"title,omitempty"`
	Done  *bool   `json:"done,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTaskRequest) Validate() error {
	return r.ToPatch().Validate()
}

// ToPatch converts the request to a domain merge-patch.
func (r *UpdateTaskRequest) ToPatch() task.Patch {
	return task.Patch{Title: r.Title, Done: r.Done}
}
