package amphipod

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2021/dijkstra"
)

// Sentinel errors.
var (
	// ErrBadLayout indicates a malformed diagram or amphipod census.
	ErrBadLayout = errors.New("amphipod: invalid burrow layout")
	// ErrBadDepth indicates Unfold on a burrow that is not two deep.
	ErrBadDepth = errors.New("amphipod: unfold needs rooms of depth 2")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("amphipod: invalid option supplied")
)

const (
	// HallwayLen is the number of hallway cells.
	HallwayLen = 11
	// RoomCount is the number of side rooms.
	RoomCount = 4
	// MaxDepth is the deepest supported room.
	MaxDepth = 4
	// Empty marks a free cell.
	Empty byte = '.'
)

// stops lists the hallway cells where an amphipod may wait.
var stops = [...]int{0, 1, 3, 5, 7, 9, 10}

// energy holds the per-step cost of A, B, C and D.
var energy = [RoomCount]int64{1, 10, 100, 1000}

// Burrow is one arrangement of amphipods. Rooms[i][0] is the cell next to
// the hallway. Burrow is comparable and used directly as a search state.
type Burrow struct {
	Hallway [HallwayLen]byte
	Rooms   [RoomCount][MaxDepth]byte
	Depth   int
}

// Result is the outcome of Organize.
type Result struct {
	// Energy is the minimum total energy.
	Energy int64
	// Path lists every arrangement from start to organised.
	Path []Burrow
	// Stats reports how many states the search explored.
	Stats dijkstra.Stats
}

// Option configures Organize.
type Option func(*Options)

// Options holds the tunables of Organize.
type Options struct {
	// ProgressEvery reports after every N explored states; 0 disables it.
	ProgressEvery int
	// Logf receives progress lines.
	Logf func(format string, v ...any)

	err error
}

// DefaultOptions disables progress reporting.
func DefaultOptions() Options {
	return Options{Logf: func(string, ...any) {}}
}

// WithProgress logs "explored N states" through logf every n states.
// n = 0 disables reporting; a negative n surfaces as ErrOptionViolation.
func WithProgress(n int, logf func(format string, v ...any)) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: progress interval must be non-negative (%d)", ErrOptionViolation, n)
			return
		}
		o.ProgressEvery = n
		if logf != nil {
			o.Logf = logf
		}
	}
}

func doorOf(room int) int { return 2*room + 2 }

func kind(c byte) int { return int(c - 'A') }

func isAmphipod(c byte) bool { return c >= 'A' && c <= 'D' }
