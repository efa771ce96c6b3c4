// Package logging builds the task service's slog logger and carries the
// per-request logger through context.
//
// cmd/server builds one root logger from the log section of the config; the
// Logging middleware derives a child carrying request_id and correlation_id
// and stores it with WithLogger. HTTP handlers log through FromContext so
// those ids are attached:
//
//	logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
//	    slog.Int("status", status),
//	    slog.Any("error", err),
//	)
//
// The task service holds an injected logger instead and logs failures with
// operation and id attributes.
//
// Every handler runs a masq ReplaceAttr, so credential-named attributes and
// DSN-shaped values (e.g. "user:pass@tcp(db:3306)/tasks") are masked before
// they reach the output.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// contextKey is the unexported key type for storing loggers in context.
type contextKey struct{}

// New returns a logger writing to w. level is one of debug, info, warn or
// error (case-insensitive, anything else means info). format "text" selects
// the text handler and any other value JSON, which is what the dev and prod
// profiles use. At debug the source location is added to each record.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// WithLogger returns a new context with the given logger stored in it.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext extracts a *slog.Logger from the context.
// If no logger is stored, it returns slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// parseLevel converts a level string to slog.Level.
// Unrecognized values default to slog.LevelInfo.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
