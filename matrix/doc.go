// Package matrix provides dense, row-major matrices generic over numeric
// element types, together with the element-wise and product kernels, the
// pivoted LU decomposition and the inversion routines built on it.
//
// The matrix package provides:
//
//   - Dense[T] — a rectangular grid (rows ≥ 2, cols ≥ 2 by construction)
//     with flat row-major storage for cache friendliness.
//   - Element-wise kernels (Add, Sub, Hadamard, DivElem, Scale, DivScale)
//     and products (Mul, MatVec, Transpose), all returning fresh results.
//   - LUP — in-place Doolittle decomposition with partial pivoting and a
//     singularity threshold.
//   - Inverse / InverseInPlace — LU-based inversion; the in-place variant
//     consumes its argument and reuses its storage.
//
// Every shape violation surfaces as a package sentinel matched with
// errors.Is; no operation returns a partial result alongside an error.
// All functions are deterministic and never mutate their operands except
// LUP and InverseInPlace, which document exactly what they overwrite.
package matrix
