package ports

import (
	"context"

	"github.com/jsamuelsen11/task-service/internal/domain/task"
)

// TaskStore defines the persistence port for tasks.
// Implemented by the SQL storage adapter; called by the application layer.
// Each method issues a single statement.
type TaskStore interface {
	// List returns every task in store order. An empty store yields an
	// empty, non-nil slice.
	List(ctx context.Context) ([]task.Task, error)

	// Get returns a single task by ID.
	// Returns domain.ErrNotFound if the task does not exist.
	Get(ctx context.Context, id int64) (*task.Task, error)

	// Insert persists a new task and returns the store-generated ID.
	// The ID field of t is ignored.
	Insert(ctx context.Context, t *task.Task) (int64, error)

	// Update overwrites the title and done columns of the row identified by t.ID.
	Update(ctx context.Context, t *task.Task) error

	// Delete removes a task by ID.
	// Returns domain.ErrNotFound if no row was removed.
	Delete(ctx context.Context, id int64) error
}
