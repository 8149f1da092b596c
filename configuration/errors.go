// Package configuration: sentinel error set.
//
// This file defines ONLY package-level sentinel errors. Every constructor
// and combining operation that can fail returns one of these, never a
// dynamically-formatted error, so callers can branch with errors.Is.
package configuration

import "errors"

var (
	// ErrInputMismatch is returned by Union, Subtract and Concat when
	// combining Configurations bound to different Inputs (by pointer
	// identity). Caches report a foreign Input with their own sentinel,
	// cache.ErrInputMismatch.
	ErrInputMismatch = errors.New("configuration: input mismatch")

	// ErrBadIndices is returned by New when the supplied index sequence is
	// not strictly increasing, or contains an index outside [0, len(input)).
	ErrBadIndices = errors.New("configuration: indices must be sorted, unique, and in range")
)
