// Package numeric defines the element-type constraints shared by every
// ndmath container and kernel, plus the native-endian buffer codec used at
// the construction/serialization boundary.
//
// Two constraints split the API surface:
//
//   - Real  — any fixed-size integer or floating-point type; valid for
//     containers and element-wise algebra.
//   - Float — floating-point types only; required by every path that
//     divides, takes square roots or evaluates trigonometry (LUP,
//     inversion, norms, interpolation, rotation construction).
//
// Keeping the split in the type system replaces the unchecked
// cast-to-double erasure such libraries often resort to: an integer matrix
// simply cannot be passed to Inverse or InitRotation.
package numeric
