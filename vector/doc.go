// Package vector provides immutable fixed-length vectors generic over
// numeric element types, with element-wise algebra, dot and cross
// products, norms and interpolation.
//
// The vector package provides:
//
//   - Vector[T] — an ordered, fixed-length sequence (length ≥ 1),
//     immutable once constructed; every operation returns a new vector.
//   - Element-wise algebra: Add, Sub, MulElem, DivElem, Scale, DivScale.
//   - Dot product for any length; Cross product for lengths 3 and 7 only
//     (the only dimensions where a bilinear cross product exists).
//   - Float-only numerics: Norm, Normalize, Lerp.
//   - Matrix views: Vertical (N×1) and Horizontal (1×N), computed fresh
//     from the vector on each call and never aliased.
//
// Shape violations surface as package sentinels matched with errors.Is.
package vector
