// SPDX-License-Identifier: MIT
// Package matrix: Dense container and factories.
// Dense is the concrete, row-major storage primitive behind every kernel
// in this package: a flat slice for performance and cache friendliness,
// generic over the numeric element type.

package matrix

import (
	"fmt"
	"strings"

	"github.com/kaellir/ndmath/numeric"
)

// MinDimension is the construction minimum for general factories: a matrix
// has at least 2 rows and 2 columns. Single-row/-column shapes exist only
// as explicit vector views (NewRow, NewColumn).
const MinDimension = 2

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// A consumed Dense (after InverseInPlace) has r == c == 0 and nil data.
type Dense[T numeric.Real] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// newDense allocates a fresh shape without the public MinDimension check.
// Private on purpose: kernels derive shapes from already-validated inputs,
// and vector views legitimately have a 1-length side.
func newDense[T numeric.Real](rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// New creates a rows×cols Dense initialized to zeros.
//
// Implementation:
//   - Stage 1: Validate rows ≥ MinDimension and cols ≥ MinDimension.
//   - Stage 2: Allocate the flat backing slice and return.
//
// Errors: ErrInvalidDimension on an undersized shape.
// Complexity: Time O(r*c), Space O(r*c).
func New[T numeric.Real](rows, cols int) (*Dense[T], error) {
	if rows < MinDimension || cols < MinDimension {
		return nil, ErrInvalidDimension
	}

	return newDense[T](rows, cols), nil
}

// Identity creates the n×n identity matrix.
// Errors: ErrInvalidDimension when n < MinDimension.
// Complexity: Time O(n²), Space O(n²).
func Identity[T numeric.Real](n int) (*Dense[T], error) {
	m, err := New[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// FromRows creates a Dense from a nested row slice, validating
// rectangularity: every row must have the same length as row 0.
// The input is copied; the result owns independent storage.
//
// Errors: ErrInvalidDimension on an undersized or ragged input.
// Complexity: Time O(r*c), Space O(r*c).
func FromRows[T numeric.Real](rows [][]T) (*Dense[T], error) {
	if len(rows) < MinDimension || len(rows[0]) < MinDimension {
		return nil, ErrInvalidDimension
	}
	cols := len(rows[0])
	for _, row := range rows {
		if len(row) != cols {
			return nil, ErrInvalidDimension // ragged input
		}
	}

	m := newDense[T](len(rows), cols)
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// FromFlat creates a rows×cols Dense from a flat row-major slice.
// The slice is copied; len(flat) must equal rows*cols.
//
// Errors: ErrInvalidDimension on an undersized shape or a length mismatch.
// Complexity: Time O(r*c), Space O(r*c).
func FromFlat[T numeric.Real](rows, cols int, flat []T) (*Dense[T], error) {
	if rows < MinDimension || cols < MinDimension || len(flat) != rows*cols {
		return nil, ErrInvalidDimension
	}

	m := newDense[T](rows, cols)
	copy(m.data, flat)

	return m, nil
}

// NewRow creates a 1×N horizontal vector view matrix from elems (copied).
// This and NewColumn are the deliberate escape hatch from the MinDimension
// construction invariant: degenerate shapes exist only as named views.
//
// Errors: ErrInvalidDimension when elems is empty.
// Complexity: Time O(n), Space O(n).
func NewRow[T numeric.Real](elems []T) (*Dense[T], error) {
	if len(elems) == 0 {
		return nil, ErrInvalidDimension
	}

	m := newDense[T](1, len(elems))
	copy(m.data, elems)

	return m, nil
}

// NewColumn creates an N×1 vertical vector view matrix from elems (copied).
// See NewRow for the invariant note.
//
// Errors: ErrInvalidDimension when elems is empty.
// Complexity: Time O(n), Space O(n).
func NewColumn[T numeric.Real](elems []T) (*Dense[T], error) {
	if len(elems) == 0 {
		return nil, ErrInvalidDimension
	}

	m := newDense[T](len(elems), 1)
	copy(m.data, elems)

	return m, nil
}

// Rows returns the number of rows in the matrix. Complexity: O(1).
func (m *Dense[T]) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix. Complexity: O(1).
func (m *Dense[T]) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange on an invalid index (also the behavior of a
// consumed matrix, whose shape is 0×0).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Errors: ErrOutOfRange on an invalid index.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: copyData}
}

// Validate reports whether the matrix is rectangular and its storage is
// consistent with the declared shape. Flat storage keeps this trivially
// true for live matrices; a consumed matrix reports false.
// Complexity: O(1).
func (m *Dense[T]) Validate() bool {
	return m.r > 0 && m.c > 0 && len(m.data) == m.r*m.c
}

// ToArray returns a defensive nested-slice copy of the matrix, row-major.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) ToArray() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]T, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// ToSlice returns a defensive flat row-major copy of the backing storage.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) ToSlice() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// String implements fmt.Stringer: one bracketed line per row, for debugging.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
