// SPDX-License-Identifier: MIT
// Package matrix: LU-based matrix inversion.
// Two variants share one substitution kernel: Inverse works on a private
// copy of the caller's data; InverseInPlace consumes its argument and
// reuses that storage for the result.

package matrix

import "github.com/kaellir/ndmath/numeric"

// Inverse computes A⁻¹ on a private copy of m; the original is untouched.
//
// Implementation:
//   - Stage 1: Validate m non-nil and square; clone it.
//   - Stage 2: LUP-decompose the clone, build the permuted identity as the
//     right-hand side, forward-substitute (L·Y = P·I) and back-substitute
//     (U·X = Y).
//
// Behavior highlights:
//   - A·Inverse(A) ≈ I within a tolerance governed by threshold.
//   - No partial result: on any failure the returned matrix is nil.
//
// Inputs:
//   - m: square invertible matrix (read-only here).
//   - threshold: singularity threshold forwarded to LUP
//     (DefaultSingularityThreshold when in doubt).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: Time O(n³), Space O(n²).
func Inverse[T numeric.Float](m *Dense[T], threshold T) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return invertLU(m.Clone(), threshold)
}

// InverseInPlace computes A⁻¹ using m's own storage as scratch space and
// result backing. It CONSUMES its argument: m is reset to an empty matrix
// so stale handles fail fast instead of silently aliasing the inverse.
// The returned matrix is backed by the storage m used to own, now holding
// the inverse.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular. On error m is already
// consumed; its former contents are unspecified.
// Complexity: Time O(n³), Space O(n²) for the substitution workspace.
func InverseInPlace[T numeric.Float](m *Dense[T], threshold T) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Move the storage out of m; the caller's handle is now empty.
	work := &Dense[T]{r: m.r, c: m.c, data: m.data}
	m.r, m.c, m.data = 0, 0, nil

	inv, err := invertLU(work, threshold)
	if err != nil {
		return nil, err
	}

	// Copy the result back so the consumed storage holds the inverse and
	// stays the backing of the returned handle.
	copy(work.data, inv.data)
	inv.data = work.data

	return inv, nil
}

// invertLU decomposes lu in place and solves A·X = I column-block-wise.
// Grounded contract: b starts as the permuted identity P·I; the forward
// sweep eliminates the L multipliers below each diagonal, the backward
// sweep divides each row by its pivot before eliminating it from the rows
// above.
func invertLU[T numeric.Float](lu *Dense[T], threshold T) (*Dense[T], error) {
	p, err := LUP(lu, threshold)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := lu.r
	b := newDense[T](n, n)

	// Permuted identity right-hand side: b[row][col] = 1 iff p[row] == col.
	for row := 0; row < n; row++ {
		b.data[row*n+p[row]] = 1
	}

	// Solve L·Y = P·I: subtract L-multiplier-scaled rows below the diagonal.
	var factor T
	for col := 0; col < n; col++ {
		colBase := col * n
		for i := col + 1; i < n; i++ {
			factor = lu.data[i*n+col]
			if factor == 0 {
				continue
			}
			iBase := i * n
			for j := 0; j < n; j++ {
				b.data[iBase+j] -= b.data[colBase+j] * factor
			}
		}
	}

	// Solve U·X = Y from the last row upward: divide each row by its
	// diagonal pivot, then eliminate it from the rows above.
	var pivot T
	for col := n - 1; col >= 0; col-- {
		colBase := col * n
		pivot = lu.data[colBase+col]
		for j := 0; j < n; j++ {
			b.data[colBase+j] /= pivot
		}
		for i := 0; i < col; i++ {
			factor = lu.data[i*n+col]
			if factor == 0 {
				continue
			}
			iBase := i * n
			for j := 0; j < n; j++ {
				b.data[iBase+j] -= b.data[colBase+j] * factor
			}
		}
	}

	return b, nil
}
