// SPDX-License-Identifier: MIT

// Package numeric: native-endian buffer codec for Float element slices.
// The codec exists for interop with graphics/compute APIs that exchange
// raw, machine-order element buffers; it is a boundary concern, not an
// algebra concern, so containers delegate here instead of rolling their
// own byte logic.
package numeric

import (
	"encoding/binary"
	"errors"
	"math"
	"unsafe"
)

// ErrBufferSize indicates that a byte buffer's length is not a whole
// multiple of the element size, so no element count can be inferred.
var ErrBufferSize = errors.New("numeric: buffer length is not a multiple of the element size")

// ElemSize reports the in-memory size of T in bytes (4 for float32 kinds,
// 8 for float64 kinds). Complexity: O(1).
func ElemSize[T Float]() int {
	var z T

	return int(unsafe.Sizeof(z))
}

// MarshalSlice appends the native-byte-order encoding of src to dst and
// returns the extended buffer. Elements are written in slice order.
//
// Implementation:
//   - Stage 1: Resolve the element width once via ElemSize.
//   - Stage 2: Append each element's IEEE-754 bits with binary.NativeEndian.
//
// Complexity: Time O(len(src)), Space O(len(src)·width) appended.
func MarshalSlice[T Float](dst []byte, src []T) []byte {
	if ElemSize[T]() == 4 {
		for _, v := range src {
			dst = binary.NativeEndian.AppendUint32(dst, math.Float32bits(float32(v)))
		}

		return dst
	}
	for _, v := range src {
		dst = binary.NativeEndian.AppendUint64(dst, math.Float64bits(float64(v)))
	}

	return dst
}

// UnmarshalSlice decodes a native-byte-order buffer into a fresh element
// slice. The buffer length must be a whole multiple of the element size.
//
// Implementation:
//   - Stage 1: Validate len(buf) against the element width.
//   - Stage 2: Decode each element's bits with binary.NativeEndian.
//
// Returns ErrBufferSize when the length does not divide evenly.
// Complexity: Time O(len(buf)), Space O(len(buf)/width).
func UnmarshalSlice[T Float](buf []byte) ([]T, error) {
	width := ElemSize[T]()
	if len(buf)%width != 0 {
		return nil, ErrBufferSize
	}

	out := make([]T, len(buf)/width)
	if width == 4 {
		for i := range out {
			out[i] = T(math.Float32frombits(binary.NativeEndian.Uint32(buf[i*4:])))
		}

		return out, nil
	}
	for i := range out {
		out[i] = T(math.Float64frombits(binary.NativeEndian.Uint64(buf[i*8:])))
	}

	return out, nil
}
