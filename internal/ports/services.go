package ports

import (
	"context"

	"github.com/jsamuelsen11/task-service/internal/domain/task"
)

// TaskService defines the service port for task operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type TaskService interface {
	// ListTasks returns all tasks.
	ListTasks(ctx context.Context) ([]task.Task, error)

	// GetTask returns a single task by ID.
	// Returns domain.ErrNotFound if the task does not exist.
	GetTask(ctx context.Context, id int64) (*task.Task, error)

	// CreateTask validates and persists a new task, returning its ID.
	// Returns domain.ErrValidation if the task fails validation; the store is
	// not touched in that case.
	CreateTask(ctx context.Context, t *task.Task) (int64, error)

	// UpdateTask applies a merge-patch to an existing task.
	// Returns domain.ErrValidation if the patch is invalid and
	// domain.ErrNotFound if the task does not exist.
	UpdateTask(ctx context.Context, id int64, patch task.Patch) error

	// DeleteTask deletes a task by ID.
	// Returns domain.ErrNotFound if the task does not exist.
	DeleteTask(ctx context.Context, id int64) error
}
