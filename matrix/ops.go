// SPDX-License-Identifier: MIT
// Package matrix: element-wise and product kernels.
// All kernels perform strict fail-fast validation via the central
// validators, allocate exactly one result, never mutate their operands and
// run fixed, deterministic loop orders over the flat backing slices.

package matrix

import (
	"fmt"

	"github.com/kaellir/ndmath/numeric"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opHadamard  = "Hadamard"
	opDivElem   = "DivElem"
	opScale     = "Scale"
	opDivScale  = "DivScale"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opLUP       = "LUP"
	opInverse   = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is/As keep matching. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes element-wise out = a - b when subtract is set, a + b
// otherwise. A boolean selector rather than a ±1 coefficient: T admits
// unsigned integers, where no negative-one value exists.
// Internal helper for Add/Sub to share validation and allocation.
func addSub[T numeric.Real](a, b *Dense[T], subtract bool, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newDense[T](a.r, a.c)
	if subtract {
		for idx := range res.data { // deterministic 0..n-1
			res.data[idx] = a.data[idx] - b.data[idx]
		}
	} else {
		for idx := range res.data {
			res.data[idx] = a.data[idx] + b.data[idx]
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B as a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Add[T numeric.Real](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A - B as a fresh Dense.
// For unsigned element types the difference follows Go's wraparound rules.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Sub[T numeric.Real](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, true, opSub) }

// Hadamard computes the element-wise product C[i,j] = A[i,j]·B[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Hadamard[T numeric.Real](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	res := newDense[T](a.r, a.c)
	for idx := range res.data {
		res.data[idx] = a.data[idx] * b.data[idx]
	}

	return res, nil
}

// DivElem computes the element-wise quotient C[i,j] = A[i,j]/B[i,j].
// Float-only: integer division truncation inside an algebra kernel would
// silently corrupt results. Division by a zero element follows IEEE-754.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func DivElem[T numeric.Float](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opDivElem, err)
	}

	res := newDense[T](a.r, a.c)
	for idx := range res.data {
		res.data[idx] = a.data[idx] / b.data[idx]
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha·m[i,j].
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale[T numeric.Real](m *Dense[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := newDense[T](m.r, m.c)
	for idx := range res.data {
		res.data[idx] = m.data[idx] * alpha
	}

	return res, nil
}

// DivScale returns a new matrix whose elements are m[i,j]/alpha.
// Float-only, for the same truncation reason as DivElem.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func DivScale[T numeric.Float](m *Dense[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDivScale, err)
	}

	res := newDense[T](m.r, m.c)
	for idx := range res.data {
		res.data[idx] = m.data[idx] / alpha
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A, B non-nil and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j loops with row-major strides; zero A[i,k] entries are
//     skipped to avoid useless multiplies.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul[T numeric.Real](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res := newDense[T](aRows, bCols)

	var rowOffsetA, rowOffsetB, rowOffsetR int
	var av T
	for i := 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k := 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j := 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated; Transpose(Transpose(A)) == A exactly.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose[T numeric.Real](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	res := newDense[T](m.c, m.r)
	var baseSrc int
	for i := 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// MatVec computes y = m · x for a column vector x of length m.Cols().
// Deterministic i→j order; zero x[j] entries are skipped.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r).
func MatVec[T numeric.Real](m *Dense[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]T, m.r)
	var acc, xv T
	var base int
	for i := 0; i < m.r; i++ {
		acc = 0
		base = i * m.c
		for j := 0; j < m.c; j++ {
			xv = x[j]
			if xv != 0 {
				acc += m.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}
