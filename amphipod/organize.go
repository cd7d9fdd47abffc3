package amphipod

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/aoc2021/dijkstra"
	"github.com/katalvlaran/aoc2021/internal/textio"
)

// roomColumns are the diagram columns of the four rooms.
var roomColumns = [RoomCount]int{3, 5, 7, 9}

// Parse reads a burrow diagram. The hallway must be empty.
func Parse(r io.Reader) (Burrow, error) {
	lines, err := textio.Lines(r)
	if err != nil {
		return Burrow{}, err
	}
	lines = textio.NonBlank(lines)
	if len(lines) < 4 {
		return Burrow{}, fmt.Errorf("%w: %d lines", ErrBadLayout, len(lines))
	}
	hall := lines[1]
	if strings.Trim(hall.Text, "#") != strings.Repeat(string(Empty), HallwayLen) {
		return Burrow{}, hall.Errorf("%w: hallway %q", ErrBadLayout, hall.Text)
	}

	var rooms [RoomCount]string
	for _, l := range lines[2:] {
		if strings.Trim(l.Text, "# ") == "" {
			break
		}
		if len(l.Text) <= roomColumns[RoomCount-1] {
			return Burrow{}, l.Errorf("%w: short room row %q", ErrBadLayout, l.Text)
		}
		for i, col := range roomColumns {
			rooms[i] += string(l.Text[col])
		}
	}
	b, err := NewBurrow(rooms)
	if err != nil {
		return Burrow{}, err
	}

	return b, nil
}

// Organize returns the least energy needed to move every amphipod home.
func Organize(b Burrow, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	searchOpts := []dijkstra.Option{dijkstra.WithReturnPath()}
	if every := cfg.ProgressEvery; every > 0 {
		searchOpts = append(searchOpts, dijkstra.WithOnExplore(func(s dijkstra.Stats) {
			if s.Explored%every == 0 {
				cfg.Logf("amphipod: explored %d states (%d pushed)", s.Explored, s.Pushed)
			}
		}))
	}

	res, err := dijkstra.Search(b, Burrow.Moves, Burrow.Done, searchOpts...)
	if err != nil {
		return Result{Stats: res.Stats}, fmt.Errorf("amphipod: depth %d: %w", b.Depth, err)
	}

	return Result{Energy: res.Cost, Path: res.Path, Stats: res.Stats}, nil
}

// Solve organises the burrow read from r, first as drawn and then unfolded.
func Solve(r io.Reader, opts ...Option) (folded, unfolded int64, err error) {
	b, err := Parse(r)
	if err != nil {
		return 0, 0, err
	}
	res, err := Organize(b, opts...)
	if err != nil {
		return 0, 0, err
	}
	big, err := Unfold(b)
	if err != nil {
		return 0, 0, err
	}
	resBig, err := Organize(big, opts...)
	if err != nil {
		return 0, 0, err
	}

	return res.Energy, resBig.Energy, nil
}
