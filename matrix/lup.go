// SPDX-License-Identifier: MIT
// Package matrix: pivoted LU decomposition (Doolittle with partial pivoting).
// The decomposition mutates its input in place into combined L/U storage:
// U occupies the diagonal and above, the unit-lower-triangular L's
// multipliers occupy the strict lower triangle (its implicit diagonal is 1).

package matrix

import "github.com/kaellir/ndmath/numeric"

// DefaultSingularityThreshold is the minimum acceptable pivot magnitude
// used by callers that have no better problem-specific bound. Below it the
// matrix is treated as non-invertible.
const DefaultSingularityThreshold = 1e-11

// LUP decomposes the square matrix m in place (Doolittle with partial
// pivoting) and returns the row permutation applied.
//
// Implementation:
//   - Stage 1: Validate m non-nil and square; initialize the permutation
//     to identity.
//   - Stage 2: For each column col in 0..n-1:
//     1. finalize the upper-triangular entries above the diagonal by
//     subtracting the dot product of already-finalized row/column
//     prefixes;
//     2. compute the candidate pivot values at and below the diagonal the
//     same way, tracking the row with the largest absolute value;
//     3. fail with ErrSingular if the best pivot magnitude is below
//     threshold;
//     4. swap full rows when the pivot row differs from col and record the
//     swap in the permutation;
//     5. divide every entry below the pivot by the pivot value, producing
//     the L multipliers.
//
// Behavior highlights:
//   - m is CONSUMED as a plain matrix: after a successful return it holds
//     the combined L/U factors, not the original values.
//   - perm[i] is the index of the original row now situated at position i;
//     reconstructing L·U reproduces P·A within numerical tolerance.
//
// Inputs:
//   - m: square matrix, mutated in place.
//   - threshold: small positive singularity threshold
//     (DefaultSingularityThreshold when in doubt).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (validation).
//   - ErrSingular when the largest pivot magnitude found is below threshold.
//
// Determinism: fixed column-major elimination order; ties in the pivot
// scan resolve to the lowest row index.
// Complexity: Time O(n³), Space O(n) for the permutation.
func LUP[T numeric.Float](m *Dense[T], threshold T) ([]int, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLUP, err)
	}

	n := m.r
	lu := m.data

	// Permutation starts as identity.
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	var sum, largest, pivot T
	var base, max int
	for col := 0; col < n; col++ {
		// Upper matrix construction: rows above the diagonal.
		for row := 0; row < col; row++ {
			base = row * n
			sum = lu[base+col]
			for i := 0; i < row; i++ {
				sum -= lu[base+i] * lu[i*n+col]
			}
			lu[base+col] = sum
		}

		// Lower matrix construction, tracking the best pivot candidate.
		max = col
		largest = 0
		for row := col; row < n; row++ {
			base = row * n
			sum = lu[base+col]
			for i := 0; i < col; i++ {
				sum -= lu[base+i] * lu[i*n+col]
			}
			lu[base+col] = sum

			if numeric.Abs(sum) > largest {
				largest = numeric.Abs(sum)
				max = row
			}
		}

		// Singularity check against the winning candidate.
		if numeric.Abs(lu[max*n+col]) < threshold {
			return nil, matrixErrorf(opLUP, ErrSingular)
		}

		// Pivot if necessary: swap full rows and record the reordering.
		if max != col {
			maxBase, colBase := max*n, col*n
			for i := 0; i < n; i++ {
				lu[maxBase+i], lu[colBase+i] = lu[colBase+i], lu[maxBase+i]
			}
			p[max], p[col] = p[col], p[max]
		}

		// Divide the lower elements by the winning diagonal element.
		pivot = lu[col*n+col]
		for row := col + 1; row < n; row++ {
			lu[row*n+col] /= pivot
		}
	}

	return p, nil
}
