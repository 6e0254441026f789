// Package errors provides error handling for the intellisense generator.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints
//
// Usage:
//
//	// Wrap with context
//	if err := doc.Decode(r); err != nil {
//	    return errors.Wrap(err, "failed to decode apidocs")
//	}
//
//	// Check the fatal conditions of a run
//	if errors.Is(err, errors.ErrInputMissing) {
//	    // point the user at yuidoc
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
	Is            = crdb.Is
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Sentinel errors for the fatal conditions of a generation run.
// Wrap these with errors.Wrap() to add the offending path while preserving the type.
var (
	// ErrInputMissing indicates the apidocs JSON document does not exist
	ErrInputMissing = New("apidocs input missing")

	// ErrTemplateMissing indicates the output template does not exist
	ErrTemplateMissing = New("template missing")

	// ErrInvalidConfig indicates a configuration value failed validation
	ErrInvalidConfig = New("invalid configuration")
)

// IsInputMissing checks if an error is or wraps ErrInputMissing
func IsInputMissing(err error) bool {
	return err != nil && Is(err, ErrInputMissing)
}

// IsTemplateMissing checks if an error is or wraps ErrTemplateMissing
func IsTemplateMissing(err error) bool {
	return err != nil && Is(err, ErrTemplateMissing)
}

// NewInputMissingError reports the input document path that could not be found.
func NewInputMissingError(path string) error {
	err := Wrapf(ErrInputMissing, "unable to locate apidocs JSON file: %s", path)
	return WithHint(err, "run yuidoc first, or pass the directory containing data.json")
}

// NewTemplateMissingError reports the template path that could not be found.
func NewTemplateMissingError(path string) error {
	err := Wrapf(ErrTemplateMissing, "unable to locate template file: %s", path)
	return WithHint(err, "run 'intellisense template > "+path+"' to write the default template")
}

// NewInvalidConfigError creates an invalid-config error with a formatted message
func NewInvalidConfigError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidConfig, Newf(format, args...).Error())
}
