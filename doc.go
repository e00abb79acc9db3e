// Package ndmath is a generic linear-algebra kernel for fixed-but-arbitrary
// dimension: vectors and matrices over numeric element types, element-wise
// algebra, pivoted LU decomposition with inversion, and construction of
// rotation matrices in any dimension n ≥ 2.
//
// 🚀 What is ndmath?
//
//	A small, deterministic, pure-Go computation library that brings together:
//		• Generic containers: Vector[T] and Dense[T] over integer/float elements
//		• Element-wise algebra: add, sub, Hadamard, scaling, dot & cross products
//		• Factorization: in-place Doolittle LUP with partial pivoting
//		• Inversion: copy-preserving and storage-consuming variants
//		• Rotation: n-dimensional rotation matrices from an (n−1)-point simplex
//		  (Aguilera–Pérez cascade of elementary plane rotations)
//
// ✨ Why choose ndmath?
//
//   - Type-safe numerics – float-only constraints keep trigonometric and
//     division-heavy paths away from integer element types at compile time
//   - Fail-fast contracts – every shape violation is a sentinel error,
//     matched with errors.Is; no panics on user input
//   - Deterministic – fixed loop orders, no global state, no randomness
//   - Pure Go – no cgo; safe to share results across concurrent readers
//
// Everything is organized under four subpackages:
//
//	numeric/  — shared generic constraints (Real, Float) and buffer codecs
//	matrix/   — dense row-major matrices, kernels, LUP and inversion
//	vector/   — immutable vectors, element-wise algebra, cross products
//	rotation/ — plane rotations and the generalized rotation builder
//
// Quick example — rotate (1,0) by 90° in the plane of axes 1 and 2:
//
//	R, _ := rotation.PlaneRotation[float64](2, 1, 2, 90)
//	v, _ := vector.New(1.0, 0.0)
//	w, _ := rotation.Rotate(v, R) // → (0, 1): row-vector convention, v·R
//
// Conventions: vectors are rows and transforms compose on the right.
// All operations return fresh, independently owned values; the single
// documented exception is matrix.InverseInPlace, which consumes its
// argument and reuses its storage.
package ndmath
