// SPDX-License-Identifier: MIT
// Package vector: binary-buffer construction and serialization boundary.
// Same native-byte-order contract as matrix buffers; the codec lives in
// numeric.

package vector

import "github.com/kaellir/ndmath/numeric"

// FromBuffer creates a vector from a native-byte-order binary buffer.
// The buffer length must be a whole, non-zero multiple of the element size.
//
// Errors: ErrInvalidDimension on an uneven or empty buffer.
// Complexity: Time O(n), Space O(n).
func FromBuffer[T numeric.Float](buf []byte) (*Vector[T], error) {
	elems, err := numeric.UnmarshalSlice[T](buf)
	if err != nil || len(elems) == 0 {
		return nil, vectorErrorf("FromBuffer", ErrInvalidDimension)
	}

	return &Vector[T]{data: elems}, nil
}

// ToBuffer serializes the vector into a fresh native-byte-order binary
// buffer. The buffer shares no storage with the vector.
// Errors: ErrNilVector.
// Complexity: Time O(n), Space O(n·elemSize).
func ToBuffer[T numeric.Float](v *Vector[T]) ([]byte, error) {
	if err := validateNotNil(v); err != nil {
		return nil, vectorErrorf("ToBuffer", err)
	}

	return numeric.MarshalSlice(make([]byte, 0, len(v.data)*numeric.ElemSize[T]()), v.data), nil
}
