// Package sqlstore implements [ports.TaskStore] on top of database/sql.
//
// MySQL, PostgreSQL and SQLite are supported; the driver name passed to
// [New] must match the one used with sql.Open. The caller owns the *sql.DB
// and closes it on shutdown.
package sqlstore

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	// Registered database/sql drivers. mysql is also matched in unreachable.
	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jsamuelsen11/task-service/internal/domain"
	"github.com/jsamuelsen11/task-service/internal/domain/task"
	"github.com/jsamuelsen11/task-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/task-service/internal/ports"
)

const tracerName = "sqlstore"

// Compile-time interface checks.
var (
	_ ports.TaskStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const (
	listQuery   = "SELECT id, title, done FROM tasks ORDER BY id"
	getQuery    = "SELECT id, title, done FROM tasks WHERE id = ?"
	insertQuery = "INSERT INTO tasks (title, done) VALUES (?, ?)"
	updateQuery = "UPDATE tasks SET title = ?, done = ? WHERE id = ?"
	deleteQuery = "DELETE FROM tasks WHERE id = ?"
)

// Store is a SQL-backed task store. Safe for concurrent use; all shared state
// lives in the *sql.DB connection pool.
type Store struct {
	db      *sql.DB
	dialect dialect
	metrics *telemetry.Metrics
}

// New creates a Store for the given driver ("mysql", "postgres" or
// "sqlite3"). If metrics is nil, metric recording is skipped.
func New(db *sql.DB, driver string, metrics *telemetry.Metrics) (*Store, error) {
	d, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, dialect: d, metrics: metrics}, nil
}

// Migrate creates the tasks table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	return s.observe(ctx, "migrate", func(ctx context.Context) error {
		if _, err := s.db.ExecContext(ctx, s.dialect.createTable); err != nil {
			return fmt.Errorf("creating tasks table: %w", err)
		}
		return nil
	})
}

// List returns every task ordered by id.
func (s *Store) List(ctx context.Context) ([]task.Task, error) {
	tasks := []task.Task{}
	err := s.observe(ctx, "list", func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, listQuery)
		if err != nil {
			return fmt.Errorf("querying tasks: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var t task.Task
			if err := rows.Scan(&t.ID, &t.Title, &t.Done); err != nil {
				return fmt.Errorf("scanning task: %w", err)
			}
			tasks = append(tasks, t)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterating tasks: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Get returns the task with the given id, or [domain.ErrNotFound].
func (s *Store) Get(ctx context.Context, id int64) (*task.Task, error) {
	var t task.Task
	err := s.observe(ctx, "get", func(ctx context.Context) error {
		row := s.db.QueryRowContext(ctx, s.dialect.rebind(getQuery), id)
		if err := row.Scan(&t.ID, &t.Title, &t.Done); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("task %d: %w", id, domain.ErrNotFound)
			}
			return fmt.Errorf("querying task %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Insert persists t and returns the generated id. t.ID is ignored.
func (s *Store) Insert(ctx context.Context, t *task.Task) (int64, error) {
	var id int64
	err := s.observe(ctx, "insert", func(ctx context.Context) error {
		if s.dialect.returning {
			q := s.dialect.rebind(insertQuery + " RETURNING id")
			if err := s.db.QueryRowContext(ctx, q, t.Title, t.Done).Scan(&id); err != nil {
				return fmt.Errorf("inserting task: %w", err)
			}
			return nil
		}

		res, err := s.db.ExecContext(ctx, s.dialect.rebind(insertQuery), t.Title, t.Done)
		if err != nil {
			return fmt.Errorf("inserting task: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading inserted task id: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update overwrites the title and done columns of the row identified by t.ID.
// Affected rows are not inspected: MySQL reports zero for an update that
// leaves the row unchanged.
func (s *Store) Update(ctx context.Context, t *task.Task) error {
	return s.observe(ctx, "update", func(ctx context.Context) error {
		if _, err := s.db.ExecContext(ctx, s.dialect.rebind(updateQuery), t.Title, t.Done, t.ID); err != nil {
			return fmt.Errorf("updating task %d: %w", t.ID, err)
		}
		return nil
	})
}

// Delete removes the task with the given id. Returns [domain.ErrNotFound]
// when no row was removed.
func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.observe(ctx, "delete", func(ctx context.Context) error {
		res, err := s.db.ExecContext(ctx, s.dialect.rebind(deleteQuery), id)
		if err != nil {
			return fmt.Errorf("deleting task %d: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("reading affected rows for task %d: %w", id, err)
		}
		if n == 0 {
			return fmt.Errorf("task %d: %w", id, domain.ErrNotFound)
		}
		return nil
	})
}

// observe runs fn inside a client span and records store metrics.
func (s *Store) observe(ctx context.Context, op string, fn func(context.Context) error) error {
	start := time.Now()

	ctx, span := otel.GetTracerProvider().Tracer(tracerName).Start(ctx, "tasks "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", s.dialect.name),
			attribute.String("db.operation", op),
		),
	)
	defer span.End()

	err := markUnavailable(fn(ctx))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	s.recordMetrics(ctx, op, start, err)
	return err
}

// recordMetrics is safe to call with nil metrics.
func (s *Store) recordMetrics(ctx context.Context, op string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	result := "success"
	switch {
	case errors.Is(err, domain.ErrNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(s.dialect.name),
		telemetry.AttrDBOperation.String(op),
		telemetry.AttrResult.String(result),
	)

	s.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

// markUnavailable tags errors that mean the database cannot be reached with
// domain.ErrUnavailable. Query and constraint errors pass through unchanged.
func markUnavailable(err error) error {
	if err == nil || !unreachable(err) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
}

func unreachable(err error) bool {
	var opErr *net.OpError
	switch {
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, mysql.ErrInvalidConn),
		errors.As(err, &opErr):
		return true
	}
	// database/sql does not export its closed-pool error.
	return strings.Contains(err.Error(), "sql: database is closed")
}
