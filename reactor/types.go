package reactor

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	ErrBadStep      = errors.New("reactor: malformed reboot step")
	ErrAreaTooLarge = errors.New("reactor: area too large for brute force")
	ErrNoSteps      = errors.New("reactor: no reboot steps")
)

// MaxNaiveVolume bounds the number of cubes CountNaive will allocate.
const MaxNaiveVolume = 1 << 24

// InitArea is the initialization procedure region, -50..50 on every axis.
var InitArea = Cuboid{
	X: Interval{-50, 50},
	Y: Interval{-50, 50},
	Z: Interval{-50, 50},
}

// Interval is the inclusive integer range [Lo, Hi].
type Interval struct {
	Lo, Hi int
}

// Cuboid is an axis-aligned box of cubes.
type Cuboid struct {
	X, Y, Z Interval
}

// Step switches every cube of a cuboid on or off.
type Step struct {
	On bool
	Cuboid
}

// Len returns the number of integers in iv.
func (iv Interval) Len() uint64 {
	if iv.Hi < iv.Lo {
		return 0
	}

	return uint64(iv.Hi-iv.Lo) + 1
}

// Intersect returns the overlap of iv and o and whether it is non-empty.
func (iv Interval) Intersect(o Interval) (Interval, bool) {
	out := Interval{max(iv.Lo, o.Lo), min(iv.Hi, o.Hi)}

	return out, out.Lo <= out.Hi
}

func (iv Interval) String() string { return fmt.Sprintf("%d..%d", iv.Lo, iv.Hi) }

func (c Cuboid) String() string { return fmt.Sprintf("x=%v,y=%v,z=%v", c.X, c.Y, c.Z) }

func (s Step) String() string {
	if s.On {
		return "on " + s.Cuboid.String()
	}

	return "off " + s.Cuboid.String()
}
