// SPDX-License-Identifier: MIT
// Package vector: sentinel error set. All algorithms return these
// sentinels and tests check them via errors.Is; no panics on user input.

package vector

import "errors"

var (
	// ErrInvalidDimension is returned when a vector would be constructed
	// with zero length or from a buffer of uneven byte length.
	ErrInvalidDimension = errors.New("vector: invalid dimension")

	// ErrOutOfRange indicates an element index outside [0, Size).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates two operands of different lengths in
	// an element-wise operation or dot product.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrUnsupportedDimension is returned when a cross product is requested
	// for a vector length other than 3 or 7.
	ErrUnsupportedDimension = errors.New("vector: cross product requires dimension 3 or 7")

	// ErrZeroNorm is returned by Normalize when the vector's norm is zero
	// and no direction can be produced.
	ErrZeroNorm = errors.New("vector: zero norm")

	// ErrNilVector indicates that a nil *Vector was used.
	ErrNilVector = errors.New("vector: nil vector")
)
