package logger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging.
const (
	FieldRunID     = "run_id"
	FieldCommand   = "command"
	FieldComponent = "component"

	// Files and paths
	FieldPath      = "path"
	FieldInputDir  = "input_dir"
	FieldOutputDir = "output_dir"
	FieldFile      = "file"

	// Counts
	FieldRecords  = "records"
	FieldUnique   = "unique"
	FieldChunks   = "chunks"
	FieldQuantity = "quantity"
	FieldMax      = "max_unique"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"
)

type contextKey string

const runIDKey contextKey = "logger_run_id"

// NewRunID returns a fresh identifier for one CLI invocation.
func NewRunID() string {
	return uuid.NewString()
}

// WithRunID adds a run ID to the context for logging
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// RunIDFromContext returns the run ID stored by WithRunID, or "".
func RunIDFromContext(ctx context.Context) string {
	runID, _ := ctx.Value(runIDKey).(string)
	return runID
}

// LoggerFromContext returns a logger carrying the run ID from ctx, if any.
func LoggerFromContext(ctx context.Context) *zap.SugaredLogger {
	if runID := RunIDFromContext(ctx); runID != "" {
		return Logger.With(FieldRunID, runID)
	}
	return Logger
}

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	log := logger.ComponentLogger("inventory.merge")
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
