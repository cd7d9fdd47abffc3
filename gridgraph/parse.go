package gridgraph

import (
	"fmt"
	"io"

	"github.com/katalvlaran/aoc2021/internal/textio"
)

// ParseDigits reads a block of digit rows such as
//
//	2199943210
//	3987894921
//
// into a [][]int. Blank lines are skipped; row lengths are validated by
// NewGridGraph, not here.
func ParseDigits(r io.Reader) ([][]int, error) {
	lines, err := textio.Lines(r)
	if err != nil {
		return nil, err
	}
	var grid [][]int
	for _, l := range textio.NonBlank(lines) {
		row := make([]int, len(l.Text))
		for i := 0; i < len(l.Text); i++ {
			c := l.Text[i]
			if c < '0' || c > '9' {
				return nil, l.Errorf("column %d: %w", i+1, fmt.Errorf("%q: %w", c, ErrBadDigit))
			}
			row[i] = int(c - '0')
		}
		grid = append(grid, row)
	}
	if len(grid) == 0 {
		return nil, ErrEmptyGrid
	}

	return grid, nil
}
