// SPDX-License-Identifier: MIT
// Package vector: Vector container, factories and derived matrix views.
// Vector is immutable once constructed: factories copy their input,
// operations return new vectors, and no accessor exposes the backing slice.

package vector

import (
	"fmt"
	"strings"

	"github.com/kaellir/ndmath/matrix"
	"github.com/kaellir/ndmath/numeric"
)

// vectorErrorf wraps an underlying error with an operation tag, preserving
// the sentinel via %w. Call only with err != nil.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Vector is an ordered, fixed-length sequence of T (length ≥ 1).
type Vector[T numeric.Real] struct {
	data []T // backing storage, never shared with callers
}

// New creates a vector from the given elements.
// Errors: ErrInvalidDimension when no elements are given.
// Complexity: Time O(n), Space O(n).
func New[T numeric.Real](elems ...T) (*Vector[T], error) {
	return FromSlice(elems)
}

// FromSlice creates a vector from a flat slice (defensively copied).
// Errors: ErrInvalidDimension on an empty slice.
// Complexity: Time O(n), Space O(n).
func FromSlice[T numeric.Real](elems []T) (*Vector[T], error) {
	if len(elems) == 0 {
		return nil, ErrInvalidDimension
	}

	data := make([]T, len(elems))
	copy(data, elems)

	return &Vector[T]{data: data}, nil
}

// Copy returns a fully independent copy of v.
// Errors: ErrNilVector.
// Complexity: Time O(n), Space O(n).
func Copy[T numeric.Real](v *Vector[T]) (*Vector[T], error) {
	if err := validateNotNil(v); err != nil {
		return nil, vectorErrorf("Copy", err)
	}

	return FromSlice(v.data)
}

// Size returns the vector length. Complexity: O(1).
func (v *Vector[T]) Size() int {
	return len(v.data)
}

// At retrieves the element at index i.
// Errors: ErrOutOfRange on an invalid index.
// Complexity: O(1).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, vectorErrorf(fmt.Sprintf("Vector.At(%d)", i), ErrOutOfRange)
	}

	return v.data[i], nil
}

// ToArray returns a defensive copy of the backing storage.
// Complexity: Time O(n), Space O(n).
func (v *Vector[T]) ToArray() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Vertical returns the N×1 vertical matrix view of v. The view is a
// structural derivation computed fresh on every call: it owns its storage
// and never aliases the vector.
// Complexity: Time O(n), Space O(n).
func (v *Vector[T]) Vertical() (*matrix.Dense[T], error) {
	return matrix.NewColumn(v.data)
}

// Horizontal returns the 1×N horizontal matrix view of v. Same ownership
// rules as Vertical.
// Complexity: Time O(n), Space O(n).
func (v *Vector[T]) Horizontal() (*matrix.Dense[T], error) {
	return matrix.NewRow(v.data)
}

// String implements fmt.Stringer: a single bracketed row, for debugging.
// Complexity: O(n).
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", x)
	}
	sb.WriteByte(']')

	return sb.String()
}

// validateNotNil guards receivers/arguments; returns the plain sentinel so
// call sites wrap uniformly.
func validateNotNil[T numeric.Real](v *Vector[T]) error {
	if v == nil || v.data == nil {
		return ErrNilVector
	}

	return nil
}

// validateSameSize — composite: NotNil(a) → NotNil(b) → equal length.
func validateSameSize[T numeric.Real](a, b *Vector[T]) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}
	if len(a.data) != len(b.data) {
		return ErrDimensionMismatch
	}

	return nil
}
