// Package errors provides error handling for xmlprops.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints attached to generation failures
//
// Usage:
//
//	// Wrap a sentinel with document context
//	return errors.Wrapf(errors.ErrUnresolvedType, "type %q", name)
//
//	// Add hints for users
//	return errors.WithHint(err, "add a package attribute")
//
//	// Check errors
//	if errors.Is(err, errors.ErrUnresolvedType) {
//	    // handle unresolved type
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
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Combination
var (
	CombineErrors      = crdb.CombineErrors
	AssertionFailedf   = crdb.AssertionFailedf
	WithSecondaryError = crdb.WithSecondaryError
	GetReportableStack = crdb.GetReportableStackTrace
)

// Generation error taxonomy.
// Every failure aborts only the document being processed.
// Wrap these with Wrapf to add the offending name while preserving the type.
var (
	// ErrInvalidDocument indicates the markup could not be parsed as XML
	ErrInvalidDocument = New("invalid markup document")

	// ErrMissingRootAttribute indicates the root element lacks name or package
	ErrMissingRootAttribute = New("missing root attribute")

	// ErrUnresolvedType indicates an unqualified type name that is not built in
	ErrUnresolvedType = New("unresolved type")

	// ErrEmptyGenerics indicates a generics element without element children
	ErrEmptyGenerics = New("empty generics")

	// ErrMissingName indicates a declaration node without a name attribute
	ErrMissingName = New("missing name")

	// ErrInvalidName indicates a file, package or declaration name that is
	// not a Kotlin identifier
	ErrInvalidName = New("invalid name")

	// ErrUnknownModifier indicates a modifier token outside the recognized set
	ErrUnknownModifier = New("unknown modifier")
)

// IsResolutionError reports whether err comes from type, field or modifier
// resolution rather than from reading the document itself.
func IsResolutionError(err error) bool {
	return err != nil && IsAny(err, ErrUnresolvedType, ErrEmptyGenerics, ErrMissingName, ErrUnknownModifier)
}

// IsDocumentError reports whether err is a structural problem with the
// document (malformed XML or missing root attributes).
func IsDocumentError(err error) bool {
	return err != nil && IsAny(err, ErrInvalidDocument, ErrMissingRootAttribute, ErrInvalidName)
}
