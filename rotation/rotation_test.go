// Package rotation_test verifies plane rotations and the generalized
// rotation builder: the handedness convention, orthogonality, determinant,
// angle additivity and the simplex validation rules.
package rotation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kaellir/ndmath/matrix"
	"github.com/kaellir/ndmath/rotation"
	"github.com/kaellir/ndmath/vector"
)

const epsRot = 1e-9

// requireMatrixNear asserts element-wise closeness of two dense matrices.
func requireMatrixNear(t *testing.T, want, got *matrix.Dense[float64], eps float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	w, g := want.ToArray(), got.ToArray()
	for i := range w {
		for j := range w[i] {
			require.InDelta(t, w[i][j], g[i][j], eps, "entry (%d,%d)", i, j)
		}
	}
}

// det computes the determinant through LUP: product of the U diagonal times
// the permutation sign.
func det(t *testing.T, m *matrix.Dense[float64]) float64 {
	t.Helper()
	lu := m.Clone()
	perm, err := matrix.LUP(lu, matrix.DefaultSingularityThreshold)
	require.NoError(t, err)

	d := 1.0
	for i := 0; i < lu.Rows(); i++ {
		v, err := lu.At(i, i)
		require.NoError(t, err)
		d *= v
	}
	// Resolve the permutation parity by sorting it with swaps.
	p := append([]int(nil), perm...)
	for i := range p {
		for p[i] != i {
			j := p[i]
			p[i], p[j] = p[j], p[i]
			d = -d
		}
	}

	return d
}

func mustRotate(t *testing.T, v *vector.Vector[float64], r *matrix.Dense[float64]) []float64 {
	t.Helper()
	out, err := rotation.Rotate(v, r)
	require.NoError(t, err)

	return out.ToArray()
}

func TestPlaneRotation_Handedness2D(t *testing.T) {
	// 90° in the (1,2) plane carries (1,0) onto (0,1): x toward y.
	r, err := rotation.PlaneRotation[float64](2, 1, 2, 90)
	require.NoError(t, err)

	got := mustRotate(t, vec(t, 1, 0), r)
	require.InDelta(t, 0, got[0], epsRot)
	require.InDelta(t, 1, got[1], epsRot)
}

func TestPlaneRotation_BlockEntries(t *testing.T) {
	r, err := rotation.PlaneRotation[float64](4, 2, 4, 30)
	require.NoError(t, err)
	grid := r.ToArray()

	cos30, sin30 := 0.8660254037844387, 0.5
	require.InDelta(t, cos30, grid[1][1], epsRot)
	require.InDelta(t, sin30, grid[1][3], epsRot)
	require.InDelta(t, -sin30, grid[3][1], epsRot)
	require.InDelta(t, cos30, grid[3][3], epsRot)

	// Off-plane axes stay untouched.
	require.Equal(t, 1.0, grid[0][0])
	require.Equal(t, 1.0, grid[2][2])
	require.Equal(t, 0.0, grid[0][2])
}

func TestPlaneRotation_InvalidPlane(t *testing.T) {
	cases := []struct {
		name       string
		size, a, b int
	}{
		{"size below minimum", 1, 1, 2},
		{"axis zero", 3, 0, 2},
		{"axis beyond size", 3, 1, 4},
		{"axes coincide", 3, 2, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := rotation.PlaneRotation[float64](tc.size, tc.a, tc.b, 45)
			require.ErrorIs(t, err, rotation.ErrInvalidPlane)
		})
	}
}

func TestInitRotation_AxisAligned3D(t *testing.T) {
	// Rotation about the z axis: the simplex pins the z line, so the
	// builder must reproduce the elementary (1,2) plane rotation.
	simplex := mustFromRows(t, [][]float64{
		{0, 0, 0},
		{0, 0, 1},
	})

	r, err := rotation.InitRotation(simplex, 90, matrix.DefaultSingularityThreshold)
	require.NoError(t, err)

	want, err := rotation.PlaneRotation[float64](3, 1, 2, 90)
	require.NoError(t, err)
	requireMatrixNear(t, want, r, epsRot)

	// x lands on y, the axis stays fixed.
	got := mustRotate(t, vec(t, 1, 0, 0), r)
	require.InDelta(t, 0, got[0], epsRot)
	require.InDelta(t, 1, got[1], epsRot)
	require.InDelta(t, 0, got[2], epsRot)

	axis := mustRotate(t, vec(t, 0, 0, 1), r)
	require.InDelta(t, 0, axis[0], epsRot)
	require.InDelta(t, 0, axis[1], epsRot)
	require.InDelta(t, 1, axis[2], epsRot)
}

func TestInitRotation_TranslationInvariant(t *testing.T) {
	// The returned matrix is the linear part only, so shifting every
	// simplex point by the same offset changes nothing.
	base := mustFromRows(t, [][]float64{
		{0, 0, 0},
		{0, 0, 1},
	})
	shifted := mustFromRows(t, [][]float64{
		{5, -2, 7},
		{5, -2, 8},
	})

	r1, err := rotation.InitRotation(base, 37, matrix.DefaultSingularityThreshold)
	require.NoError(t, err)
	r2, err := rotation.InitRotation(shifted, 37, matrix.DefaultSingularityThreshold)
	require.NoError(t, err)

	requireMatrixNear(t, r1, r2, epsRot)
}

func TestInitRotation_FixesSimplexDirections4D(t *testing.T) {
	simplex := mustFromRows(t, [][]float64{
		{0, 0, 0, 0},
		{2, 0, 0, 0},
		{0, 3, 0, 0},
	})

	r, err := rotation.InitRotation(simplex, 60, matrix.DefaultSingularityThreshold)
	require.NoError(t, err)

	// Direction vectors of the pinned hyperplane are eigenvectors with
	// eigenvalue 1.
	for _, dir := range [][]float64{{2, 0, 0, 0}, {0, 3, 0, 0}} {
		got := mustRotate(t, vec(t, dir...), r)
		for j := range dir {
			require.InDelta(t, dir[j], got[j], epsRot)
		}
	}
}

func TestInitRotation_OrthogonalUnitDeterminant(t *testing.T) {
	simplex := mustFromRows(t, [][]float64{
		{1, 2, 3, 4},
		{2, 0, -1, 1},
		{0, 1, 1, -2},
	})

	r, err := rotation.InitRotation(simplex, 42.5, matrix.DefaultSingularityThreshold)
	require.NoError(t, err)

	rt, err := matrix.Transpose(r)
	require.NoError(t, err)
	prod, err := matrix.Mul(r, rt)
	require.NoError(t, err)
	eye, err := matrix.Identity[float64](4)
	require.NoError(t, err)
	requireMatrixNear(t, eye, prod, epsRot)

	require.InDelta(t, 1.0, det(t, r), epsRot)
}

func TestInitRotation_ZeroAngleIsIdentity(t *testing.T) {
	simplex := mustFromRows(t, [][]float64{
		{1, 1, 0},
		{0, 2, 5},
	})

	r, err := rotation.InitRotation(simplex, 0, matrix.DefaultSingularityThreshold)
	require.NoError(t, err)

	eye, err := matrix.Identity[float64](3)
	require.NoError(t, err)
	requireMatrixNear(t, eye, r, epsRot)
}

func TestInitRotation_OppositeAnglesCancel(t *testing.T) {
	simplex := mustFromRows(t, [][]float64{
		{3, -1, 2},
		{1, 4, 0},
	})

	fwd, err := rotation.InitRotation(simplex, 73, matrix.DefaultSingularityThreshold)
	require.NoError(t, err)
	back, err := rotation.InitRotation(simplex, -73, matrix.DefaultSingularityThreshold)
	require.NoError(t, err)

	prod, err := matrix.Mul(fwd, back)
	require.NoError(t, err)
	eye, err := matrix.Identity[float64](3)
	require.NoError(t, err)
	requireMatrixNear(t, eye, prod, epsRot)
}

func TestInitRotation_AnglesAdd(t *testing.T) {
	simplex := mustFromRows(t, [][]float64{
		{0, 0, 0},
		{1, 1, 1},
	})

	a, err := rotation.InitRotation(simplex, 25, matrix.DefaultSingularityThreshold)
	require.NoError(t, err)
	b, err := rotation.InitRotation(simplex, 35, matrix.DefaultSingularityThreshold)
	require.NoError(t, err)
	sum, err := rotation.InitRotation(simplex, 60, matrix.DefaultSingularityThreshold)
	require.NoError(t, err)

	prod, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireMatrixNear(t, sum, prod, epsRot)
}

func TestInitRotation_SingleRowSimplex2D(t *testing.T) {
	// In the plane one point pins the rotation center; the linear part is
	// the elementary 2-D rotation.
	simplex, err := matrix.NewRow([]float64{4, -1})
	require.NoError(t, err)

	r, err := rotation.InitRotation(simplex, 90, matrix.DefaultSingularityThreshold)
	require.NoError(t, err)

	want, err := rotation.PlaneRotation[float64](2, 1, 2, 90)
	require.NoError(t, err)
	requireMatrixNear(t, want, r, epsRot)
}

func TestInitRotation_InvalidSimplex(t *testing.T) {
	_, err := rotation.InitRotation[float64](nil, 10, matrix.DefaultSingularityThreshold)
	require.ErrorIs(t, err, rotation.ErrInvalidSimplex)

	// 2 rows × 4 cols: a 4-space simplex needs 3 points.
	bad := mustFromRows(t, [][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
	})
	_, err = rotation.InitRotation(bad, 10, matrix.DefaultSingularityThreshold)
	require.ErrorIs(t, err, rotation.ErrInvalidSimplex)

	// Square shape: rows must be cols-1.
	square := mustFromRows(t, [][]float64{
		{1, 0},
		{0, 1},
	})
	_, err = rotation.InitRotation(square, 10, matrix.DefaultSingularityThreshold)
	require.ErrorIs(t, err, rotation.ErrInvalidSimplex)
}

func TestRotate_NilAndMismatch(t *testing.T) {
	r, err := rotation.PlaneRotation[float64](3, 1, 2, 90)
	require.NoError(t, err)

	_, err = rotation.Rotate[float64](nil, r)
	require.ErrorIs(t, err, vector.ErrNilVector)

	_, err = rotation.Rotate(vec(t, 1, 0), r)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// vec builds a float64 vector or fails the test.
func vec(t *testing.T, elems ...float64) *vector.Vector[float64] {
	t.Helper()
	v, err := vector.New(elems...)
	require.NoError(t, err)

	return v
}

// mustFromRows builds a dense matrix or fails the test.
func mustFromRows(t *testing.T, rows [][]float64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}
