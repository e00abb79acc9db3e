// SPDX-License-Identifier: MIT
// Package matrix: binary-buffer construction and serialization boundary.
// Buffers are raw native-byte-order element grids, row-major, for interop
// with graphics/compute APIs. The byte codec itself lives in numeric.

package matrix

import (
	"math"

	"github.com/kaellir/ndmath/numeric"
)

// FromBuffer creates a rows×cols Dense from a native-byte-order binary
// buffer holding exactly rows*cols elements, row-major.
//
// Errors: ErrInvalidDimension on an undersized shape, an uneven buffer
// length or an element count that does not match rows*cols.
// Complexity: Time O(r*c), Space O(r*c).
func FromBuffer[T numeric.Float](rows, cols int, buf []byte) (*Dense[T], error) {
	elems, err := numeric.UnmarshalSlice[T](buf)
	if err != nil {
		return nil, matrixErrorf("FromBuffer", ErrInvalidDimension)
	}

	return FromFlat(rows, cols, elems)
}

// FromSquareBuffer creates a Dense from a native-byte-order binary buffer
// with inferred square dimension: the element count must be a perfect
// square (and at least MinDimension² elements).
//
// Errors: ErrInvalidDimension when the element count is not a perfect
// square or the buffer length is uneven.
// Complexity: Time O(n²), Space O(n²).
func FromSquareBuffer[T numeric.Float](buf []byte) (*Dense[T], error) {
	elems, err := numeric.UnmarshalSlice[T](buf)
	if err != nil {
		return nil, matrixErrorf("FromSquareBuffer", ErrInvalidDimension)
	}

	n := int(math.Sqrt(float64(len(elems))))
	if n*n != len(elems) {
		return nil, matrixErrorf("FromSquareBuffer", ErrInvalidDimension)
	}

	return FromFlat(n, n, elems)
}

// ToBuffer serializes the matrix row-major into a fresh native-byte-order
// binary buffer. Marshaling is a boundary concern: the buffer shares no
// storage with the matrix.
// Complexity: Time O(r*c), Space O(r*c·elemSize).
func ToBuffer[T numeric.Float](m *Dense[T]) ([]byte, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToBuffer", err)
	}

	return numeric.MarshalSlice(make([]byte, 0, len(m.data)*numeric.ElemSize[T]()), m.data), nil
}
