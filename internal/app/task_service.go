// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/task-service/internal/domain"
	"github.com/jsamuelsen11/task-service/internal/domain/task"
	"github.com/jsamuelsen11/task-service/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService on top of the TaskStore port. It
// validates input before any store call, looks rows up before mutating them,
// and logs failures with the operation name and task ID.
type TaskService struct {
	store  ports.TaskStore
	logger *slog.Logger
}

// NewTaskService creates a TaskService backed by the given store. A nil
// logger discards all output.
func NewTaskService(store ports.TaskStore, logger *slog.Logger) *TaskService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskService{
		store:  store,
		logger: logger,
	}
}

// ListTasks returns all tasks.
func (s *TaskService) ListTasks(ctx context.Context) ([]task.Task, error) {
	s.logger.DebugContext(ctx, "listing tasks")

	tasks, err := s.store.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks",
			slog.String("operation", "ListTasks"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return tasks, nil
}

// GetTask returns a single task by ID.
func (s *TaskService) GetTask(ctx context.Context, id int64) (*task.Task, error) {
	s.logger.DebugContext(ctx, "fetching task", slog.Int64("id", id))

	t, err := s.store.Get(ctx, id)
	if err != nil {
		s.logFailure(ctx, "GetTask", id, err)
		return nil, err
	}

	return t, nil
}

// CreateTask validates and inserts a new task.
func (s *TaskService) CreateTask(ctx context.Context, t *task.Task) (int64, error) {
	s.logger.InfoContext(ctx, "creating task", slog.String("title", t.Title))

	if err := t.Validate(); err != nil {
		return 0, err
	}

	id, err := s.store.Insert(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "CreateTask"),
			slog.Any("error", err),
		)
		return 0, err
	}

	return id, nil
}

// UpdateTask merges patch into the stored task. The lookup happens before
// any write so an unknown ID never reaches Update.
func (s *TaskService) UpdateTask(ctx context.Context, id int64, patch task.Patch) error {
	s.logger.InfoContext(ctx, "updating task", slog.Int64("id", id))

	if err := patch.Validate(); err != nil {
		return err
	}

	current, err := s.store.Get(ctx, id)
	if err != nil {
		s.logFailure(ctx, "UpdateTask", id, err)
		return err
	}

	if patch.IsEmpty() {
		return nil
	}

	patch.Apply(current)

	if err := s.store.Update(ctx, current); err != nil {
		s.logFailure(ctx, "UpdateTask", id, err)
		return err
	}

	return nil
}

// DeleteTask removes an existing task.
func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting task", slog.Int64("id", id))

	if _, err := s.store.Get(ctx, id); err != nil {
		s.logFailure(ctx, "DeleteTask", id, err)
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		s.logFailure(ctx, "DeleteTask", id, err)
		return err
	}

	return nil
}

// logFailure logs a per-task failure. Missing tasks are a client error and are
// logged at warn level; everything else is an error.
func (s *TaskService) logFailure(ctx context.Context, operation string, id int64, err error) {
	level := slog.LevelError
	msg := "task operation failed"
	if errors.Is(err, domain.ErrNotFound) {
		level = slog.LevelWarn
		msg = "task not found"
	}
	s.logger.Log(ctx, level, msg,
		slog.String("operation", operation),
		slog.Int64("id", id),
		slog.Any("error", err),
	)
}
