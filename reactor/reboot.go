package reactor

import (
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/katalvlaran/aoc2021/internal/textio"
	"github.com/katalvlaran/aoc2021/mdarray"
)

var stepPattern = regexp.MustCompile(
	`^(on|off) x=(-?\d+)\.\.(-?\d+),y=(-?\d+)\.\.(-?\d+),z=(-?\d+)\.\.(-?\d+)$`)

// ParseStep parses one "on|off x=a..b,y=c..d,z=e..f" line.
func ParseStep(s string) (Step, error) {
	m := stepPattern.FindStringSubmatch(s)
	if m == nil {
		return Step{}, fmt.Errorf("%w: %q", ErrBadStep, s)
	}
	var n [6]int
	for i := range n {
		v, err := strconv.Atoi(m[i+2])
		if err != nil {
			return Step{}, fmt.Errorf("%w: %q: %v", ErrBadStep, s, err)
		}
		n[i] = v
	}
	st := Step{
		On: m[1] == "on",
		Cuboid: Cuboid{
			X: Interval{n[0], n[1]},
			Y: Interval{n[2], n[3]},
			Z: Interval{n[4], n[5]},
		},
	}
	for _, iv := range st.axes() {
		if iv.Lo > iv.Hi {
			return Step{}, fmt.Errorf("%w: empty range %v in %q", ErrBadStep, *iv, s)
		}
	}

	return st, nil
}

// Parse reads one step per non-blank line.
func Parse(r io.Reader) ([]Step, error) {
	lines, err := textio.Lines(r)
	if err != nil {
		return nil, err
	}
	var steps []Step
	for _, l := range textio.NonBlank(lines) {
		st, err := ParseStep(l.Text)
		if err != nil {
			return nil, l.Errorf("%w", err)
		}
		steps = append(steps, st)
	}
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}

	return steps, nil
}

// CountNaive replays steps cube by cube inside area and returns how many
// cubes of area are on. Parts of steps outside area are ignored.
func CountNaive(steps []Step, area Cuboid) (uint64, error) {
	vol := area.Volume()
	if vol == 0 || vol > MaxNaiveVolume {
		return 0, fmt.Errorf("%w: %v holds %d cubes", ErrAreaTooLarge, area, vol)
	}
	grid, err := mdarray.New(false, int(area.X.Len()), int(area.Y.Len()), int(area.Z.Len()))
	if err != nil {
		return 0, err
	}
	for _, st := range steps {
		in, ok := st.Intersect(area)
		if !ok {
			continue
		}
		for z := in.Z.Lo; z <= in.Z.Hi; z++ {
			for y := in.Y.Lo; y <= in.Y.Hi; y++ {
				for x := in.X.Lo; x <= in.X.Hi; x++ {
					if err := grid.Set(x-area.X.Lo, y-area.Y.Lo, z-area.Z.Lo, st.On); err != nil {
						return 0, err
					}
				}
			}
		}
	}

	return uint64(grid.Count(func(on bool) bool { return on })), nil
}

// Count returns how many cubes are on after all steps. A nil area counts
// everywhere; otherwise only cubes inside *area are considered.
func Count(steps []Step, area *Cuboid) uint64 {
	var lit []Cuboid
	for _, st := range steps {
		c := st.Cuboid
		if area != nil {
			var ok bool
			if c, ok = c.Intersect(*area); !ok {
				continue
			}
		}
		next := lit[:0:0]
		for _, l := range lit {
			next = append(next, l.Subtract(c)...)
		}
		if st.On {
			next = append(next, c)
		}
		lit = next
	}

	var total uint64
	for _, c := range lit {
		total += c.Volume()
	}

	return total
}

// Solve returns the cubes lit inside InitArea and the cubes lit overall.
func Solve(r io.Reader) (initialization, reboot uint64, err error) {
	steps, err := Parse(r)
	if err != nil {
		return 0, 0, err
	}
	area := InitArea

	return Count(steps, &area), Count(steps, nil), nil
}
