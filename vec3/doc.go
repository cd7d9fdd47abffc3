// Package vec3 is a small integer algebra for 3-D points, linear maps and
// affine maps. It backs the scanner registration in package scanner.
//
// What:
//
//   - Vector: an integer 3-tuple with Add, Sub, Neg, Dot, Cross and norms.
//   - LinearMap: a 3×3 integer matrix stored as three rows.
//   - AffineMap: a LinearMap followed by a translation.
//   - Rotations: the 24 orientation-preserving axis permutations of a cube.
//
// Semantics:
//
//   - All types are values; no operation mutates its receiver.
//   - Compose(a, b) means "apply b first, then a".
//   - Inverse is exact over the integers and defined for unimodular maps
//     (det = ±1). Any other determinant returns ErrNotInvertible, since the
//     inverse would not be an integer matrix.
//
// Complexity:
//
//   - Every operation is O(1); Rotations allocates a fresh 24-element slice.
//
// Errors:
//
//   - ErrNotInvertible: the linear part has a determinant other than ±1.
package vec3
