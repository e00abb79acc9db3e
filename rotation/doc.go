// Package rotation constructs rotation matrices in arbitrary dimension
// n ≥ 2: elementary plane rotations and the generalized Aguilera–Pérez
// rotation about the hyperplane pinned by an (n−1)-point simplex.
//
// The rotation package provides:
//
//   - PlaneRotation — an identity matrix with the standard 2×2 rotation
//     block at one pair of axes; angle supplied in degrees.
//   - InitRotation — the full n-dimensional rotation built by composing a
//     translation and a triangular cascade of plane rotations in
//     homogeneous (n+1)-dimensional coordinates, rotating by the requested
//     angle in the canonical (n−1, n) plane, then undoing the cascade.
//   - Rotate — row-vector application v·R, pinning the package convention.
//
// Convention: vectors are rows and transforms compose on the right, so a
// 90° rotation in the plane of axes 1 and 2 maps (1,0) to (0,1).
//
// Element types are floating-point only: the cascade evaluates atan2 and
// trigonometric values at every step, which integer elements would round
// into meaninglessness.
package rotation
