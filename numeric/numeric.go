// SPDX-License-Identifier: MIT

// Package numeric: generic element-type constraints.
// This file intentionally contains ONLY the constraint declarations and the
// tiny pure helpers (Abs) that every kernel shares. Buffer marshaling lives
// in buffer.go per the package conventions.
package numeric

import "golang.org/x/exp/constraints"

// Real is the element constraint for containers and element-wise algebra:
// any built-in fixed-size integer or floating-point type.
type Real interface {
	constraints.Integer | constraints.Float
}

// Float is the element constraint for numerically meaningful kernels
// (factorization, inversion, norms, rotation). It admits float32/float64
// and their defined types only.
type Float interface {
	constraints.Float
}

// Abs returns the absolute value of x.
// Works for any Real; integer minimum-value overflow is the caller's
// concern, as with the stdlib idiom.
// Complexity: O(1).
func Abs[T Real](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
