// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Parsing of digit grids
//   - Identification of connected components of open cells
//
// Cells with value ≥ WallValue are walls; every other cell is open.
package gridgraph

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		WallValue:       opts.WallValue,
		neighborOffsets: offsets,
	}

	return gg, nil
}

// From2D builds a wall-free GridGraph with the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Len returns the number of cells.
func (gg *GridGraph) Len() int {
	return gg.Width * gg.Height
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Value returns the cell value at row-major index idx.
func (gg *GridGraph) Value(idx int) int {
	x, y := gg.Coordinate(idx)
	return gg.CellValues[y][x]
}

// IsWall reports whether the cell at idx blocks movement.
func (gg *GridGraph) IsWall(idx int) bool {
	return gg.Value(idx) >= gg.WallValue
}

// Neighbors appends to dst the in-bounds neighbor indices of idx, in
// offset order, and returns the extended slice. Walls are included;
// callers filter with IsWall when they need to.
func (gg *GridGraph) Neighbors(dst []int, idx int) []int {
	x, y := gg.Coordinate(idx)
	for _, d := range gg.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if gg.InBounds(nx, ny) {
			dst = append(dst, gg.Index(nx, ny))
		}
	}

	return dst
}
