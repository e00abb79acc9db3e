// SPDX-License-Identifier: MIT
// Package rotation: plane rotations and the generalized rotation builder.
// Everything here works in the row-vector convention: points are rows,
// transforms compose on the right, translations live in the last row of a
// homogeneous matrix.

package rotation

import (
	"errors"
	"fmt"
	"math"

	"github.com/kaellir/ndmath/matrix"
	"github.com/kaellir/ndmath/numeric"
	"github.com/kaellir/ndmath/vector"
)

var (
	// ErrInvalidSimplex is returned when the simplex is not an (n−1)×n
	// matrix with n ≥ 2: exactly n−1 points are needed to pin down the
	// hyperplane complement of the rotation plane in n-space.
	ErrInvalidSimplex = errors.New("rotation: simplex must be (n-1) rows by n columns with n >= 2")

	// ErrInvalidPlane is returned when plane axes are out of range, equal,
	// or the requested size is below 2.
	ErrInvalidPlane = errors.New("rotation: invalid plane axes")
)

// rotationErrorf wraps err with an operation tag, preserving the sentinel
// via %w. Call only with err != nil.
func rotationErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// degToRad converts an angle from degrees to radians.
func degToRad[T numeric.Float](deg T) float64 {
	return float64(deg) * math.Pi / 180
}

// planeRotationRad builds the size×size identity with the standard
// rotation block [cos θ, sin θ; −sin θ, cos θ] at 1-based axes (a, b).
// Axes must already be validated; θ is in radians.
func planeRotationRad[T numeric.Float](size, a, b int, theta float64) *matrix.Dense[T] {
	m, _ := matrix.Identity[T](size) // size ≥ 2 guaranteed by callers
	sin, cos := math.Sincos(theta)
	_ = m.Set(a-1, a-1, T(cos))
	_ = m.Set(a-1, b-1, T(sin))
	_ = m.Set(b-1, a-1, T(-sin))
	_ = m.Set(b-1, b-1, T(cos))

	return m
}

// PlaneRotation builds an elementary rotation confined to the coordinate
// plane of 1-based axes (a, b): the size×size identity except for the
// standard 2×2 rotation block. The angle is supplied in degrees and
// converted to radians internally.
//
// Errors: ErrInvalidPlane when size < 2, an axis is outside [1, size], or
// the axes coincide.
// Complexity: Time O(size²), Space O(size²).
func PlaneRotation[T numeric.Float](size, a, b int, angleDeg T) (*matrix.Dense[T], error) {
	if size < matrix.MinDimension || a < 1 || b < 1 || a > size || b > size || a == b {
		return nil, rotationErrorf("PlaneRotation", ErrInvalidPlane)
	}

	return planeRotationRad[T](size, a, b, degToRad(angleDeg)), nil
}

// InitRotation constructs the n×n rotation matrix that rotates n-space by
// angleDeg (degrees) about the hyperplane pinned by an (n−1)-point simplex,
// using the Aguilera–Pérez cascade of elementary plane rotations.
//
// Implementation:
//   - Stage 1: Validate the simplex shape: n = Cols ≥ 2, Rows = n−1.
//   - Stage 2: In homogeneous (n+1)-dimensional coordinates, build the
//     translation M₀ moving the simplex's first point to the origin
//     (translation vector −firstPoint in the last row), apply it to the
//     point set and seed the running transform with it.
//   - Stage 3: For r = 2..n−1 and c = n down to r, rotate in the
//     (c−1, c) coordinate plane by the angle derived from atan2 of the
//     working point's entries at (row r−1, cols c−1 and c−2), zeroing that
//     coordinate pair and driving the simplex into canonical axis-aligned
//     position; fold every step into the running transform on the right.
//   - Stage 4: Compose result · PlaneRotation(n−1, n, angleDeg) ·
//     inverse(result), then strip the homogeneous row and column.
//
// Behavior highlights:
//   - The output R is orthogonal with determinant ≈ 1; angleDeg = 0 yields
//     R ≈ I, and composing the +θ and −θ outputs yields ≈ I.
//   - threshold guards the inversion of the composed cascade
//     (matrix.DefaultSingularityThreshold when in doubt).
//
// Inputs:
//   - simplex: (n−1)×n matrix, one point per row. Single-row simplexes
//     (n = 2) are built via vector.Horizontal or matrix.NewRow.
//   - angleDeg: rotation angle in degrees.
//   - threshold: singularity threshold for the cascade inversion.
//
// Errors:
//   - ErrInvalidSimplex on a malformed simplex shape.
//   - matrix.ErrSingular propagated when the composed cascade is degenerate.
//
// Determinism: fixed (r, c) visitation order; no data-dependent branching
// beyond the atan2 values themselves.
// Complexity: Time O(n⁴) (O(n²) cascade steps × O(n²)-to-O(n³) work each),
// Space O(n²).
func InitRotation[T numeric.Float](simplex *matrix.Dense[T], angleDeg T, threshold T) (*matrix.Dense[T], error) {
	if simplex == nil {
		return nil, rotationErrorf("InitRotation", ErrInvalidSimplex)
	}
	n := simplex.Cols()
	if n < 2 || simplex.Rows() != n-1 {
		return nil, rotationErrorf("InitRotation", ErrInvalidSimplex)
	}
	h := n + 1 // homogeneous dimension

	// M₀: translation carrying the first simplex point to the origin,
	// transposed into the row-vector convention (−firstPoint in row n).
	m0, err := matrix.Identity[T](h)
	if err != nil {
		return nil, rotationErrorf("InitRotation", err)
	}
	first := simplex.ToArray()[0]
	for j := 0; j < n; j++ {
		_ = m0.Set(n, j, -first[j])
	}

	// Working point set with the translation removed; running transform.
	v := applyHom(simplex.ToArray(), m0)
	result := m0

	// Triangular cascade: zero one coordinate pair per step. Rotating by
	// -atan2(q, p) in the (c-1, c) plane sends the working point's pair
	// (p, q) to (√(p²+q²), 0) under the row-vector block convention.
	for r := 2; r <= n-1; r++ {
		for c := n; c >= r; c-- {
			theta := math.Atan2(float64(v[r-1][c-1]), float64(v[r-1][c-2]))
			step := planeRotationRad[T](h, c-1, c, -theta)
			v = applyHom(v, step)
			result, err = matrix.Mul(result, step)
			if err != nil {
				return nil, rotationErrorf("InitRotation", err)
			}
		}
	}

	// Rotate in the canonical (n−1, n) plane, then undo the cascade.
	plane := planeRotationRad[T](h, n-1, n, degToRad(angleDeg))
	inv, err := matrix.Inverse(result, threshold)
	if err != nil {
		return nil, rotationErrorf("InitRotation", err) // ErrSingular propagates
	}
	full, err := matrix.Mul(result, plane)
	if err != nil {
		return nil, rotationErrorf("InitRotation", err)
	}
	full, err = matrix.Mul(full, inv)
	if err != nil {
		return nil, rotationErrorf("InitRotation", err)
	}

	// Strip the homogeneous row and column back off.
	out, err := matrix.New[T](n, n)
	if err != nil {
		return nil, rotationErrorf("InitRotation", err)
	}
	grid := full.ToArray()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = out.Set(i, j, grid[i][j])
		}
	}

	return out, nil
}

// Rotate applies rotation matrix r to vector v in the package's row-vector
// convention: result = v · r.
//
// Errors: vector/matrix sentinels on nil operands or when v.Size() does
// not match r.Rows().
// Complexity: Time O(n²), Space O(n).
func Rotate[T numeric.Float](v *vector.Vector[T], r *matrix.Dense[T]) (*vector.Vector[T], error) {
	if v == nil {
		return nil, rotationErrorf("Rotate", vector.ErrNilVector)
	}
	row, err := v.Horizontal()
	if err != nil {
		return nil, rotationErrorf("Rotate", err)
	}
	prod, err := matrix.Mul(row, r)
	if err != nil {
		return nil, rotationErrorf("Rotate", err)
	}

	return vector.FromSlice(prod.ToSlice())
}

// applyHom augments each point row with a homogeneous 1, right-multiplies
// by the (n+1)×(n+1) transform m, and strips the homogeneous coordinate
// back off. Points stay as plain rows so degenerate (single-row) sets need
// no matrix shape.
func applyHom[T numeric.Float](pts [][]T, m *matrix.Dense[T]) [][]T {
	grid := m.ToArray()
	n := len(grid) - 1 // point dimension

	out := make([][]T, len(pts))
	for i, pt := range pts {
		row := make([]T, n)
		for j := 0; j < n; j++ {
			acc := grid[n][j] // homogeneous 1 × translation row
			for k := 0; k < n; k++ {
				acc += pt[k] * grid[k][j]
			}
			row[j] = acc
		}
		out[i] = row
	}

	return out
}
