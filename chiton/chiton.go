// Package chiton finds the lowest-risk route across a cave of risk levels
// (Advent of Code 2021, day 15). Entering a cell costs its risk level; the
// starting cell is free.
//
// The full cave is the input tile repeated tiles×tiles times. Each tile
// step right or down adds 1 to every risk level, and levels above 9 wrap
// around to 1.
package chiton

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/aoc2021/dijkstra"
	"github.com/katalvlaran/aoc2021/gridgraph"
)

// FullTiles is the tiling factor of the full cave.
const FullTiles = 5

// ErrBadTiles is returned for a non-positive tiling factor.
var ErrBadTiles = errors.New("chiton: tiles must be positive")

// Expand builds the tiles×tiles cave from one tile.
func Expand(tile [][]int, tiles int) ([][]int, error) {
	if tiles <= 0 {
		return nil, fmt.Errorf("%w (%d)", ErrBadTiles, tiles)
	}
	if len(tile) == 0 || len(tile[0]) == 0 {
		return nil, gridgraph.ErrEmptyGrid
	}
	h, w := len(tile), len(tile[0])
	out := make([][]int, h*tiles)
	for y := range out {
		out[y] = make([]int, w*tiles)
		src := tile[y%h]
		if len(src) != w {
			return nil, gridgraph.ErrNonRectangular
		}
		for x := range out[y] {
			bump := x/w + y/h
			out[y][x] = (src[x%w]+bump-1)%9 + 1
		}
	}

	return out, nil
}

// LowestRisk returns the minimum total risk from the top-left to the
// bottom-right corner of the tiled cave.
func LowestRisk(tile [][]int, tiles int, opts ...dijkstra.Option) (int64, error) {
	cave, err := Expand(tile, tiles)
	if err != nil {
		return 0, err
	}
	g, err := gridgraph.From2D(cave, gridgraph.Conn4)
	if err != nil {
		return 0, err
	}

	target := g.Len() - 1
	var nbuf []int
	next := func(i int) []dijkstra.Edge[int] {
		nbuf = g.Neighbors(nbuf[:0], i)
		edges := make([]dijkstra.Edge[int], len(nbuf))
		for k, n := range nbuf {
			edges[k] = dijkstra.Edge[int]{To: n, Cost: int64(g.Value(n))}
		}
		return edges
	}
	res, err := dijkstra.Search(0, next, func(i int) bool { return i == target }, opts...)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// Solve returns the lowest risk across one tile and across the full cave.
func Solve(r io.Reader) (single, full int64, err error) {
	tile, err := gridgraph.ParseDigits(r)
	if err != nil {
		return 0, 0, err
	}
	if single, err = LowestRisk(tile, 1); err != nil {
		return 0, 0, err
	}
	if full, err = LowestRisk(tile, FullTiles); err != nil {
		return 0, 0, err
	}

	return single, full, nil
}
