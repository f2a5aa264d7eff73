package tablefilter

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with tablefilter-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogLoad logs a dataset load.
func (l *Logger) LogLoad(ctx context.Context, filename string, rows, columns int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"filename", filename,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "dataset loaded",
			"filename", filename,
			"rows", rows,
			"columns", columns,
		)
	}
}

// LogCondition logs the outcome of a condition edit.
func (l *Logger) LogCondition(ctx context.Context, column, operator string, err error) {
	if err != nil {
		l.WarnContext(ctx, "condition rejected",
			"column", column,
			"operator", operator,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "condition added",
			"column", column,
			"operator", operator,
		)
	}
}

// LogApply logs a filter application.
func (l *Logger) LogApply(ctx context.Context, conditions, matched, total, warnings int) {
	l.DebugContext(ctx, "filters applied",
		"conditions", conditions,
		"matched", matched,
		"total", total,
		"warnings", warnings,
	)
}

// LogExport logs an export operation.
func (l *Logger) LogExport(ctx context.Context, name string, rows int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "export failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "export completed",
			"name", name,
			"rows", rows,
		)
	}
}
