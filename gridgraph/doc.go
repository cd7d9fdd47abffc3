// Package gridgraph treats a 2D grid of integer cells as a graph, enabling
// neighbor lookups and connected-region discovery.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable WallValue.
//   - Identifies connected components of open cells (value < WallValue).
//   - Exposes row-major indices so callers (heightmap, chiton) can keep
//     flat per-cell state.
//
// Why:
//
//   - Heightmaps: basins are regions bounded by height-9 walls.
//   - Path search: neighbor enumeration for Dijkstra over cells.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Neighbors:           O(d).
//
// Options:
//
//   - GridOptions.WallValue: cells with value ≥ WallValue block movement.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Flood fill uses an explicit stack, so region size is bounded by memory
// rather than by call depth.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadDigit: ParseDigits met a non-digit character.
package gridgraph
