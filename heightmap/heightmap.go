// Package heightmap analyses a smoke-basin height map (Advent of Code 2021,
// day 9): low points, their risk levels, and the basins that drain into
// them. Height 9 never belongs to a basin; every other cell belongs to
// exactly one.
package heightmap

import (
	"errors"
	"io"
	"slices"

	"github.com/katalvlaran/aoc2021/gridgraph"
)

// Wall is the height that separates basins.
const Wall = 9

// ErrTooFewBasins is returned when fewer than three basins exist.
var ErrTooFewBasins = errors.New("heightmap: fewer than three basins")

// Map is a parsed height map.
type Map struct {
	g *gridgraph.GridGraph
}

// New wraps a rectangular grid of heights.
func New(heights [][]int) (*Map, error) {
	g, err := gridgraph.NewGridGraph(heights, gridgraph.GridOptions{WallValue: Wall, Conn: gridgraph.Conn4})
	if err != nil {
		return nil, err
	}

	return &Map{g: g}, nil
}

// Parse reads a digit grid.
func Parse(r io.Reader) (*Map, error) {
	heights, err := gridgraph.ParseDigits(r)
	if err != nil {
		return nil, err
	}

	return New(heights)
}

// LowPoints returns the indices of cells strictly lower than all their
// orthogonal neighbors, in row-major order.
func (m *Map) LowPoints() []int {
	var (
		out  []int
		nbuf []int
	)
	for i := 0; i < m.g.Len(); i++ {
		h := m.g.Value(i)
		low := true
		nbuf = m.g.Neighbors(nbuf[:0], i)
		for _, n := range nbuf {
			if m.g.Value(n) <= h {
				low = false
				break
			}
		}
		if low {
			out = append(out, i)
		}
	}

	return out
}

// RiskSum adds 1+height over all low points.
func (m *Map) RiskSum() int {
	sum := 0
	for _, i := range m.LowPoints() {
		sum += 1 + m.g.Value(i)
	}

	return sum
}

// BasinSizes returns the size of every basin, largest first.
func (m *Map) BasinSizes() []int {
	comps := m.g.ConnectedComponents()
	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c)
	}
	slices.SortFunc(sizes, func(a, b int) int { return b - a })

	return sizes
}

// LargestBasinsProduct multiplies the sizes of the three largest basins.
func (m *Map) LargestBasinsProduct() (int, error) {
	sizes := m.BasinSizes()
	if len(sizes) < 3 {
		return 0, ErrTooFewBasins
	}

	return sizes[0] * sizes[1] * sizes[2], nil
}

// Solve returns the risk sum and the product of the three largest basins.
func Solve(r io.Reader) (risk, basins int, err error) {
	m, err := Parse(r)
	if err != nil {
		return 0, 0, err
	}
	basins, err = m.LargestBasinsProduct()
	if err != nil {
		return 0, 0, err
	}

	return m.RiskSum(), basins, nil
}
