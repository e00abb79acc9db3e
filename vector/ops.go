// SPDX-License-Identifier: MIT
// Package vector: element-wise algebra, dot/cross products, norms and
// interpolation. All kernels validate fail-fast, allocate exactly one
// result vector and never mutate their operands.

package vector

import (
	"math"

	"github.com/kaellir/ndmath/numeric"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMulElem   = "MulElem"
	opDivElem   = "DivElem"
	opScale     = "Scale"
	opDivScale  = "DivScale"
	opDot       = "Dot"
	opCross     = "Cross"
	opNorm      = "Norm"
	opNormalize = "Normalize"
	opLerp      = "Lerp"
)

// Cross product exists only in these dimensions (the bilinear products
// induced by the quaternions and octonions).
const (
	crossDim3 = 3
	crossDim7 = 7
)

// addSub computes element-wise out = a - b when subtract is set, a + b
// otherwise. A boolean selector rather than a ±1 coefficient: T admits
// unsigned integers, where no negative-one value exists.
func addSub[T numeric.Real](a, b *Vector[T], subtract bool, opTag string) (*Vector[T], error) {
	if err := validateSameSize(a, b); err != nil {
		return nil, vectorErrorf(opTag, err)
	}

	out := make([]T, len(a.data))
	if subtract {
		for i := range out { // deterministic 0..n-1
			out[i] = a.data[i] - b.data[i]
		}
	} else {
		for i := range out {
			out[i] = a.data[i] + b.data[i]
		}
	}

	return &Vector[T]{data: out}, nil
}

// Add computes the element-wise sum a + b as a fresh vector.
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: Time O(n), Space O(n).
func Add[T numeric.Real](a, b *Vector[T]) (*Vector[T], error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference a - b as a fresh vector.
// For unsigned element types the difference follows Go's wraparound rules.
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: Time O(n), Space O(n).
func Sub[T numeric.Real](a, b *Vector[T]) (*Vector[T], error) { return addSub(a, b, true, opSub) }

// MulElem computes the element-wise product a[i]·b[i] as a fresh vector.
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: Time O(n), Space O(n).
func MulElem[T numeric.Real](a, b *Vector[T]) (*Vector[T], error) {
	if err := validateSameSize(a, b); err != nil {
		return nil, vectorErrorf(opMulElem, err)
	}

	out := make([]T, len(a.data))
	for i := range out {
		out[i] = a.data[i] * b.data[i]
	}

	return &Vector[T]{data: out}, nil
}

// DivElem computes the element-wise quotient a[i]/b[i] as a fresh vector.
// Float-only: integer truncation inside an algebra kernel would silently
// corrupt results. Division by a zero element follows IEEE-754.
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: Time O(n), Space O(n).
func DivElem[T numeric.Float](a, b *Vector[T]) (*Vector[T], error) {
	if err := validateSameSize(a, b); err != nil {
		return nil, vectorErrorf(opDivElem, err)
	}

	out := make([]T, len(a.data))
	for i := range out {
		out[i] = a.data[i] / b.data[i]
	}

	return &Vector[T]{data: out}, nil
}

// Scale returns alpha·v as a fresh vector.
// Errors: ErrNilVector.
// Complexity: Time O(n), Space O(n).
func Scale[T numeric.Real](v *Vector[T], alpha T) (*Vector[T], error) {
	if err := validateNotNil(v); err != nil {
		return nil, vectorErrorf(opScale, err)
	}

	out := make([]T, len(v.data))
	for i := range out {
		out[i] = v.data[i] * alpha
	}

	return &Vector[T]{data: out}, nil
}

// DivScale returns v/alpha as a fresh vector. Float-only.
// Errors: ErrNilVector.
// Complexity: Time O(n), Space O(n).
func DivScale[T numeric.Float](v *Vector[T], alpha T) (*Vector[T], error) {
	if err := validateNotNil(v); err != nil {
		return nil, vectorErrorf(opDivScale, err)
	}

	out := make([]T, len(v.data))
	for i := range out {
		out[i] = v.data[i] / alpha
	}

	return &Vector[T]{data: out}, nil
}

// Dot computes the inner product Σ a[i]·b[i].
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: Time O(n), Space O(1).
func Dot[T numeric.Real](a, b *Vector[T]) (T, error) {
	var acc T
	if err := validateSameSize(a, b); err != nil {
		return acc, vectorErrorf(opDot, err)
	}

	for i := range a.data {
		acc += a.data[i] * b.data[i]
	}

	return acc, nil
}

// Cross computes the cross product of a and b.
//
// Implementation:
//   - Stage 1: Validate equal lengths and that the length is 3 or 7.
//   - Stage 2: Length 3 uses the classic antisymmetric formula; length 7
//     uses the octonion table e_i × e_{i+1} = e_{i+3} with indices mod 7.
//
// Behavior highlights:
//   - The result is orthogonal to both operands in either dimension.
//   - Lengths other than 3 and 7 fail: no bilinear cross product exists
//     there, so there is nothing meaningful to compute.
//
// Errors: ErrNilVector, ErrDimensionMismatch, ErrUnsupportedDimension.
// Complexity: Time O(1) (fixed small n), Space O(n).
func Cross[T numeric.Real](a, b *Vector[T]) (*Vector[T], error) {
	if err := validateSameSize(a, b); err != nil {
		return nil, vectorErrorf(opCross, err)
	}

	x, y := a.data, b.data
	switch len(x) {
	case crossDim3:
		return &Vector[T]{data: []T{
			x[1]*y[2] - x[2]*y[1],
			x[2]*y[0] - x[0]*y[2],
			x[0]*y[1] - x[1]*y[0],
		}}, nil

	case crossDim7:
		out := make([]T, crossDim7)
		for i := 0; i < crossDim7; i++ {
			// e_i × e_{i+1} = e_{i+3}: three index-offset pairs per axis.
			out[i] = x[(i+1)%7]*y[(i+3)%7] - x[(i+3)%7]*y[(i+1)%7] +
				x[(i+2)%7]*y[(i+6)%7] - x[(i+6)%7]*y[(i+2)%7] +
				x[(i+4)%7]*y[(i+5)%7] - x[(i+5)%7]*y[(i+4)%7]
		}

		return &Vector[T]{data: out}, nil

	default:
		return nil, vectorErrorf(opCross, ErrUnsupportedDimension)
	}
}

// Norm computes the Euclidean norm √(v·v).
// Errors: ErrNilVector.
// Complexity: Time O(n), Space O(1).
func Norm[T numeric.Float](v *Vector[T]) (T, error) {
	if err := validateNotNil(v); err != nil {
		return 0, vectorErrorf(opNorm, err)
	}

	var acc T
	for _, x := range v.data {
		acc += x * x
	}

	return T(math.Sqrt(float64(acc))), nil
}

// Normalize returns v scaled to unit norm as a fresh vector.
// Errors: ErrNilVector, ErrZeroNorm when the norm is exactly zero.
// Complexity: Time O(n), Space O(n).
func Normalize[T numeric.Float](v *Vector[T]) (*Vector[T], error) {
	n, err := Norm(v)
	if err != nil {
		return nil, vectorErrorf(opNormalize, err)
	}
	if n == 0 {
		return nil, vectorErrorf(opNormalize, ErrZeroNorm)
	}

	return DivScale(v, n)
}

// Lerp linearly interpolates between a and b: a + (b-a)·t.
// t is not clamped; t=0 yields a, t=1 yields b.
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: Time O(n), Space O(n).
func Lerp[T numeric.Float](a, b *Vector[T], t T) (*Vector[T], error) {
	if err := validateSameSize(a, b); err != nil {
		return nil, vectorErrorf(opLerp, err)
	}

	out := make([]T, len(a.data))
	for i := range out {
		out[i] = a.data[i] + (b.data[i]-a.data[i])*t
	}

	return &Vector[T]{data: out}, nil
}
