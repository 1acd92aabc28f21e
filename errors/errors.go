// Package errors provides error handling for the fantasyname module.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "check the symbol table file")
//
//	// Check errors
//	if errors.Is(err, errors.ErrTableNotFound) {
//	    // handle missing table
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapOnce     = crdb.UnwrapOnce
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions and panics
var (
	AssertionFailedf                 = crdb.AssertionFailedf
	NewAssertionErrorWithWrappedErrf = crdb.NewAssertionErrorWithWrappedErrf
)

// Common sentinel errors for use across the module.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrTableNotFound indicates a symbol table file does not exist
	ErrTableNotFound = New("symbol table not found")

	// ErrInvalidTable indicates a symbol table failed validation
	ErrInvalidTable = New("invalid symbol table")

	// ErrInvalidConfig indicates the loaded configuration failed validation
	ErrInvalidConfig = New("invalid configuration")
)

// IsTableNotFoundError checks if an error is or wraps ErrTableNotFound
func IsTableNotFoundError(err error) bool {
	return err != nil && Is(err, ErrTableNotFound)
}

// IsInvalidTableError checks if an error is or wraps ErrInvalidTable
func IsInvalidTableError(err error) bool {
	return err != nil && Is(err, ErrInvalidTable)
}

// IsInvalidConfigError checks if an error is or wraps ErrInvalidConfig
func IsInvalidConfigError(err error) bool {
	return err != nil && Is(err, ErrInvalidConfig)
}

// WrapTableNotFound wraps an error as a table-not-found error with context
func WrapTableNotFound(err error, context string) error {
	return Wrap(Wrap(ErrTableNotFound, err.Error()), context)
}

// NewInvalidTableError creates an invalid-table error with a formatted message
func NewInvalidTableError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidTable, Newf(format, args...).Error())
}
