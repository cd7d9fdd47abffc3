// Package mdarray provides Array3D, a dense three-dimensional array backed
// by one flat slice.
//
// Layout:
//
//   - Cell (x, y, z) lives at offset x + (y + z·h)·w, so x varies fastest.
//   - Each visits cells in that same storage order.
//
// Safety:
//
//   - At and Set return ErrOutOfRange (wrapped with coordinates) instead
//     of panicking.
//   - New rejects non-positive dimensions with ErrBadShape.
//
// Complexity quicksheet:
//   - New/Fill/Count/Each: O(w·h·d); At/Set: O(1).
package mdarray
