package scanner

import (
	"io"
	"strings"

	"github.com/katalvlaran/aoc2021/internal/textio"
	"github.com/katalvlaran/aoc2021/vec3"
)

const (
	headerPrefix = "--- scanner "
	headerSuffix = " ---"
)

// Parse reads blank-line separated sections of the form
//
//	--- scanner 0 ---
//	404,-588,-901
//	528,-643,409
func Parse(r io.Reader) ([]Report, error) {
	lines, err := textio.Lines(r)
	if err != nil {
		return nil, err
	}
	blocks := textio.Blocks(lines)
	if len(blocks) == 0 {
		return nil, ErrNoReports
	}

	reports := make([]Report, 0, len(blocks))
	for _, block := range blocks {
		rep, err := parseSection(block)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}

	return reports, nil
}

func parseSection(block []textio.Line) (Report, error) {
	head := block[0]
	if !strings.HasPrefix(head.Text, headerPrefix) || !strings.HasSuffix(head.Text, headerSuffix) {
		return Report{}, head.Errorf("%q: %w", head.Text, ErrMalformedHeader)
	}
	id, err := textio.Int(strings.TrimSuffix(strings.TrimPrefix(head.Text, headerPrefix), headerSuffix))
	if err != nil {
		return Report{}, head.Errorf("%w: %w", ErrMalformedHeader, err)
	}

	rep := Report{ID: id, Beacons: make([]vec3.Vector, 0, len(block)-1)}
	firstSeen := make(map[vec3.Vector]int, len(block)-1)
	for _, l := range block[1:] {
		xyz, err := textio.Ints(l.Text, ",")
		if err != nil {
			return Report{}, l.Errorf("%w: %w", ErrMalformedPoint, err)
		}
		if len(xyz) != 3 {
			return Report{}, l.Errorf("%q has %d coordinates: %w", l.Text, len(xyz), ErrMalformedPoint)
		}
		p := vec3.Vector{X: xyz[0], Y: xyz[1], Z: xyz[2]}
		if prev, dup := firstSeen[p]; dup {
			return Report{}, l.Errorf("beacon %v repeats line %d: %w", p, prev, ErrMalformedPoint)
		}
		firstSeen[p] = l.No
		rep.Beacons = append(rep.Beacons, p)
	}

	return rep, nil
}
