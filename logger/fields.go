package logger

import (
	"context"

	"go.uber.org/zap"
)

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity and context
	FieldRunID = "run_id"
	FieldPhase = "phase"

	// Files and paths
	FieldFile     = "file"
	FieldTemplate = "template"
	FieldOutput   = "output"
	FieldLine     = "line"

	// Apidocs records
	FieldModule   = "module"
	FieldClass    = "class"
	FieldItem     = "item"
	FieldItemType = "itemtype"

	// Counts and sizes
	FieldCount = "count"
	FieldSize  = "size"

	// Timing
	FieldDurationMS = "duration_ms"
)

type contextKey string

const runIDKey contextKey = "logger_run_id"

// WithRunID tags the context with a generation run ID
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// RunIDFromContext returns the run ID set by WithRunID, or ""
func RunIDFromContext(ctx context.Context) string {
	runID, _ := ctx.Value(runIDKey).(string)
	return runID
}

// LoggerFromContext returns base (the global Logger when nil) carrying the
// context's run ID.
func LoggerFromContext(ctx context.Context, base *zap.SugaredLogger) *zap.SugaredLogger {
	if base == nil {
		base = Logger
	}
	if runID := RunIDFromContext(ctx); runID != "" {
		return base.With(FieldRunID, runID)
	}
	return base
}

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	gen := intellisense.Options{
//	    Logger: logger.ComponentLogger("intellisense"),
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
