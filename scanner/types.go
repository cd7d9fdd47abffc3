package scanner

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2021/vec3"
)

// Sentinel errors for parsing and resolution.
var (
	// ErrNoReports indicates an input without any scanner section.
	ErrNoReports = errors.New("scanner: no scanner reports")

	// ErrMalformedHeader indicates a section not opened by "--- scanner N ---".
	ErrMalformedHeader = errors.New("scanner: malformed section header")

	// ErrMalformedPoint indicates a beacon line that is not "x,y,z".
	ErrMalformedPoint = errors.New("scanner: malformed beacon line")

	// ErrDuplicateID indicates two reports with the same scanner number.
	ErrDuplicateID = errors.New("scanner: duplicate scanner id")

	// ErrDisconnected indicates a scanner that could not be registered
	// against any placed scanner.
	ErrDisconnected = errors.New("scanner: no registration found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("scanner: invalid option supplied")
)

// Defaults taken from the puzzle statement.
const (
	// DefaultThreshold is the number of shared beacons that proves an overlap.
	DefaultThreshold = 12
	// DefaultRange is the sensor reach along each axis.
	DefaultRange = 1000
)

// Report is one scanner's reading: its number and the beacons it saw,
// relative to itself.
type Report struct {
	ID      int
	Beacons []vec3.Vector
}

// State tracks a scanner through Resolve.
type State int

const (
	// Unplaced scanners have no known transform yet.
	Unplaced State = iota
	// Pending scanners have a transform but have not been merged.
	Pending
	// Resolved scanners are merged and have served as matching partners.
	Resolved
)

func (s State) String() string {
	switch s {
	case Unplaced:
		return "unplaced"
	case Pending:
		return "pending"
	case Resolved:
		return "resolved"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result is the outcome of a successful Resolve.
type Result struct {
	// Beacons holds every distinct beacon in the reference frame, sorted.
	Beacons []vec3.Vector
	// Transforms maps scanner ID to its local-to-reference transform.
	Transforms map[int]vec3.AffineMap
	// Order lists scanner IDs in the order they were resolved.
	Order []int
}

// Position returns the reference-frame position of scanner id.
func (r *Result) Position(id int) (vec3.Vector, bool) {
	f, ok := r.Transforms[id]
	return f.Translation, ok
}

// MaxDistance returns the largest Manhattan distance between any two
// scanner positions.
func (r *Result) MaxDistance() int {
	best := 0
	for _, a := range r.Transforms {
		for _, b := range r.Transforms {
			best = max(best, a.Translation.ManhattanDistance(b.Translation))
		}
	}

	return best
}
