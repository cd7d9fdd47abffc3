// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph package.
package gridgraph

import (
	"errors"
	"math"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadDigit indicates a non-digit character in a digit grid.
	ErrBadDigit = errors.New("gridgraph: expected a decimal digit")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// WallValue is the smallest cell value that blocks movement.
	WallValue int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// no walls (WallValue=math.MaxInt), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		WallValue: math.MaxInt,
		Conn:      Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the raw input value.
// Conn and WallValue are set from GridOptions during construction.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	WallValue       int
	neighborOffsets [][2]int
}
