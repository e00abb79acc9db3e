// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All algorithms MUST return these sentinels and tests
// MUST check them via errors.Is. No algorithm panics on user-triggered
// error conditions; panics are reserved for programmer errors in private
// helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still match via errors.Is.

var (
	// ErrInvalidDimension is returned when a requested shape is invalid:
	// rows or cols below the construction minimum, a ragged nested slice,
	// a flat slice whose length does not equal rows*cols, or a buffer whose
	// element count is not a perfect square for inferred-square construction.
	ErrInvalidDimension = errors.New("matrix: invalid dimension")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add/Sub with different shapes, or Mul where
	// a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required (LUP, Inverse)
	// but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when the largest candidate pivot magnitude
	// falls below the singularity threshold during LUP decomposition.
	// It propagates unchanged through Inverse and its callers.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) or a
	// consumed matrix was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
