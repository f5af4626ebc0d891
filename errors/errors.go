// Package errors provides error handling for brickxml.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints shown by the CLI
//
// Usage:
//
//	// Wrap with context
//	if err := decode(r); err != nil {
//	    return errors.Wrapf(err, "failed to load %s", path)
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "pass --max 1 or greater")
//
//	// Check errors
//	if errors.Is(err, errors.ErrLoad) {
//	    // manifest could not be read
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
	Mark         = crdb.Mark
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
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Sentinel errors for the manifest pipeline.
// Use these with errors.Is(); wrap them with errors.Wrap() to add context.
var (
	// ErrLoad indicates a manifest could not be opened or parsed
	ErrLoad = New("manifest load failed")

	// ErrInvalidQuantity indicates a QTY field that is not a non-negative integer
	ErrInvalidQuantity = New("invalid quantity")

	// ErrInvalidRequest indicates bad command input (flags, paths, limits)
	ErrInvalidRequest = New("invalid request")

	// ErrWrite indicates an output file or directory could not be written
	ErrWrite = New("output write failed")
)

// IsLoadError checks if an error is or wraps ErrLoad
func IsLoadError(err error) bool {
	return err != nil && Is(err, ErrLoad)
}

// IsInvalidRequestError checks if an error is or wraps ErrInvalidRequest
func IsInvalidRequestError(err error) bool {
	return err != nil && Is(err, ErrInvalidRequest)
}

// WrapLoad marks err as a load failure for path.
// The resulting message names the path and keeps the underlying cause.
func WrapLoad(err error, path string) error {
	return Mark(Wrapf(err, "unable to load manifest %s", path), ErrLoad)
}

// WrapWrite marks err as an output failure for path.
func WrapWrite(err error, path string) error {
	return Mark(Wrapf(err, "unable to write %s", path), ErrWrite)
}

// NewInvalidRequestError creates an invalid-request error with a formatted message
func NewInvalidRequestError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrInvalidRequest)
}

// NewInvalidQuantityError creates an invalid-quantity error with a formatted message
func NewInvalidQuantityError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrInvalidQuantity)
}
