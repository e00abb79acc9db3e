// Package vector_test contains unit tests for vector algebra: element-wise
// operations, dot/cross products, norms and interpolation.
package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kaellir/ndmath/vector"
)

const epsVec = 1e-12

func TestAddSub(t *testing.T) {
	a := mustVec(t, 1, 2, 3)
	b := mustVec(t, 10, 20, 30)

	sum, err := vector.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{11, 22, 33}, sum.ToArray())

	diff, err := vector.Sub(b, a)
	require.NoError(t, err)
	require.Equal(t, []float64{9, 18, 27}, diff.ToArray())

	// Operands stay untouched.
	require.Equal(t, []float64{1, 2, 3}, a.ToArray())
}

func TestAddSub_UnsignedElements(t *testing.T) {
	// Add/Sub must instantiate over unsigned element types, where no
	// negative-one value exists; subtraction wraps per the language rules.
	a, err := vector.New[uint16](100, 200, 300)
	require.NoError(t, err)
	b, err := vector.New[uint16](1, 2, 400)
	require.NoError(t, err)

	sum, err := vector.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, []uint16{101, 202, 700}, sum.ToArray())

	diff, err := vector.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, []uint16{99, 198, 65436}, diff.ToArray())
}

func TestAdd_SizeMismatch(t *testing.T) {
	_, err := vector.Add(mustVec(t, 1, 2), mustVec(t, 1, 2, 3))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestMulDivElem(t *testing.T) {
	a := mustVec(t, 1, 2, 3)
	b := mustVec(t, 2, 4, 6)

	prod, err := vector.MulElem(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 8, 18}, prod.ToArray())

	quot, err := vector.DivElem(b, a)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 2, 2}, quot.ToArray())
}

func TestScaleDivScale(t *testing.T) {
	v := mustVec(t, 1, -2)

	sc, err := vector.Scale(v, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{3, -6}, sc.ToArray())

	dv, err := vector.DivScale(v, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, -1}, dv.ToArray())
}

func TestDot(t *testing.T) {
	d, err := vector.Dot(mustVec(t, 1, 2, 3), mustVec(t, 4, 5, 6))
	require.NoError(t, err)
	require.Equal(t, 32.0, d)
}

func TestCross3_Concrete(t *testing.T) {
	// e1 × e2 = e3.
	c, err := vector.Cross(mustVec(t, 1, 0, 0), mustVec(t, 0, 1, 0))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 1}, c.ToArray())
}

func TestCross3_Anticommutative(t *testing.T) {
	a := mustVec(t, 2, -1, 3)
	b := mustVec(t, 4, 0.5, -2)

	ab, err := vector.Cross(a, b)
	require.NoError(t, err)
	ba, err := vector.Cross(b, a)
	require.NoError(t, err)

	neg, err := vector.Scale(ba, -1)
	require.NoError(t, err)
	require.Equal(t, neg.ToArray(), ab.ToArray())

	// Orthogonal to both operands.
	for _, v := range []*vector.Vector[float64]{a, b} {
		d, err := vector.Dot(ab, v)
		require.NoError(t, err)
		require.InDelta(t, 0, d, epsVec)
	}
}

func TestCross7_OrthogonalToOperands(t *testing.T) {
	a := mustVec(t, 1, 2, 3, 4, 5, 6, 7)
	b := mustVec(t, -2, 1, 0.5, 3, -1, 2, 0)

	c, err := vector.Cross(a, b)
	require.NoError(t, err)
	for _, v := range []*vector.Vector[float64]{a, b} {
		d, err := vector.Dot(c, v)
		require.NoError(t, err)
		require.InDelta(t, 0, d, 1e-9)
	}
}

func TestCross7_BasisTable(t *testing.T) {
	// e0 × e1 = e3 under the e_i × e_{i+1} = e_{i+3} construction.
	e0 := mustVec(t, 1, 0, 0, 0, 0, 0, 0)
	e1 := mustVec(t, 0, 1, 0, 0, 0, 0, 0)
	c, err := vector.Cross(e0, e1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0, 1, 0, 0, 0}, c.ToArray())
}

func TestCross_UnsupportedDimension(t *testing.T) {
	_, err := vector.Cross(mustVec(t, 1, 2, 3, 4), mustVec(t, 5, 6, 7, 8))
	require.ErrorIs(t, err, vector.ErrUnsupportedDimension)

	_, err = vector.Cross(mustVec(t, 1, 2), mustVec(t, 3, 4))
	require.ErrorIs(t, err, vector.ErrUnsupportedDimension)
}

func TestNormNormalize(t *testing.T) {
	v := mustVec(t, 3, 4)

	n, err := vector.Norm(v)
	require.NoError(t, err)
	require.Equal(t, 5.0, n)

	unit, err := vector.Normalize(v)
	require.NoError(t, err)
	require.Equal(t, []float64{0.6, 0.8}, unit.ToArray())

	un, err := vector.Norm(unit)
	require.NoError(t, err)
	require.InDelta(t, 1.0, un, epsVec)
}

func TestNormalize_ZeroNormFails(t *testing.T) {
	_, err := vector.Normalize(mustVec(t, 0, 0, 0))
	require.ErrorIs(t, err, vector.ErrZeroNorm)
}

func TestNormalize_NilPropagatesCause(t *testing.T) {
	_, err := vector.Normalize[float64](nil)
	require.ErrorIs(t, err, vector.ErrNilVector)
	// The underlying Norm failure stays in the chain.
	require.ErrorContains(t, err, "Norm:")
}

func TestLerp(t *testing.T) {
	a := mustVec(t, 0, 10)
	b := mustVec(t, 10, 20)

	mid, err := vector.Lerp(a, b, 0.5)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 15}, mid.ToArray())

	start, err := vector.Lerp(a, b, 0)
	require.NoError(t, err)
	require.Equal(t, a.ToArray(), start.ToArray())

	end, err := vector.Lerp(a, b, 1)
	require.NoError(t, err)
	require.Equal(t, b.ToArray(), end.ToArray())
}

func TestBuffer_RoundTrip(t *testing.T) {
	v := mustVec(t, 1.5, -2.25, math.Pi)
	buf, err := vector.ToBuffer(v)
	require.NoError(t, err)
	require.Len(t, buf, 3*8)

	back, err := vector.FromBuffer[float64](buf)
	require.NoError(t, err)
	require.Equal(t, v.ToArray(), back.ToArray())
}

func TestFromBuffer_UnevenFails(t *testing.T) {
	_, err := vector.FromBuffer[float64](make([]byte, 13))
	require.ErrorIs(t, err, vector.ErrInvalidDimension)

	_, err = vector.FromBuffer[float64](nil)
	require.ErrorIs(t, err, vector.ErrInvalidDimension)
}
