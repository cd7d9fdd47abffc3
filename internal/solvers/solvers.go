// Package solvers maps puzzle days to their solvers.
package solvers

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/aoc2021/amphipod"
	"github.com/katalvlaran/aoc2021/chiton"
	"github.com/katalvlaran/aoc2021/heightmap"
	"github.com/katalvlaran/aoc2021/reactor"
	"github.com/katalvlaran/aoc2021/scanner"
)

// ErrUnknownDay is returned by Lookup for a day with no solver.
var ErrUnknownDay = errors.New("solvers: no solver for day")

// Answers holds the rendered part-one and part-two answers.
type Answers [2]string

// Config carries the diagnostics hook handed to solvers that log.
type Config struct {
	// Logf receives progress lines; nil mutes them.
	Logf func(format string, v ...any)
	// ProgressEvery is the explored-state interval for search progress.
	ProgressEvery int
}

// Solver reads one puzzle input and returns both answers.
type Solver func(r io.Reader, cfg Config) (Answers, error)

var registry = map[int]Solver{
	9:  smokeBasin,
	15: chitonRisk,
	19: beaconScanner,
	22: reactorReboot,
	23: amphipodBurrow,
}

// Lookup returns the solver for day.
func Lookup(day int) (Solver, error) {
	s, ok := registry[day]
	if !ok {
		return nil, fmt.Errorf("%w %d (have %v)", ErrUnknownDay, day, Days())
	}

	return s, nil
}

// Days lists the registered days in ascending order.
func Days() []int {
	days := make([]int, 0, len(registry))
	for d := range registry {
		days = append(days, d)
	}
	slices.Sort(days)

	return days
}

func pair[T int | int64 | uint64](a, b T, err error) (Answers, error) {
	if err != nil {
		return Answers{}, err
	}

	return Answers{fmt.Sprint(a), fmt.Sprint(b)}, nil
}

func smokeBasin(r io.Reader, _ Config) (Answers, error) {
	return pair(heightmap.Solve(r))
}

func chitonRisk(r io.Reader, _ Config) (Answers, error) {
	return pair(chiton.Solve(r))
}

func beaconScanner(r io.Reader, cfg Config) (Answers, error) {
	var opts []scanner.Option
	if cfg.Logf != nil {
		opts = append(opts, scanner.WithLogf(cfg.Logf))
	}

	return pair(scanner.Solve(r, opts...))
}

func reactorReboot(r io.Reader, _ Config) (Answers, error) {
	return pair(reactor.Solve(r))
}

func amphipodBurrow(r io.Reader, cfg Config) (Answers, error) {
	var opts []amphipod.Option
	if cfg.Logf != nil && cfg.ProgressEvery > 0 {
		opts = append(opts, amphipod.WithProgress(cfg.ProgressEvery, cfg.Logf))
	}

	return pair(amphipod.Solve(r, opts...))
}
