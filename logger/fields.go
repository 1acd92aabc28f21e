package logger

import "go.uber.org/zap"

// Standard field names for consistent structured logging across the module.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"

	// Generation
	FieldPattern = "pattern"
	FieldCount   = "count"
	FieldSeed    = "seed"
	FieldLimit   = "limit"

	// Symbol tables
	FieldTable     = "table"
	FieldSymbol    = "symbol"
	FieldSymbols   = "symbols"
	FieldCandidate = "candidate"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Files and paths
	FieldFile = "file"
	FieldPath = "path"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	type Watcher struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewWatcher() *Watcher {
//	    return &Watcher{
//	        logger: logger.ComponentLogger("symbols.watcher"),
//	    }
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
// Use for sub-operations that need extra context fields.
//
// Example:
//
//	tableLogger := logger.ChildLogger(baseLogger, logger.FieldTable, path)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
