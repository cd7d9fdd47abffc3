package scanner

import (
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/aoc2021/vec3"
)

// BeaconSet is the de-duplicated beacon map in the reference frame.
type BeaconSet struct {
	points map[vec3.Vector]struct{}
}

// NewBeaconSet returns an empty set.
func NewBeaconSet() *BeaconSet {
	return &BeaconSet{points: make(map[vec3.Vector]struct{})}
}

// Merge maps pts through f and adds them. It returns how many were new;
// merging the same points twice adds nothing the second time.
func (s *BeaconSet) Merge(f vec3.AffineMap, pts []vec3.Vector) int {
	added := 0
	for _, p := range pts {
		g := f.Apply(p)
		if _, ok := s.points[g]; !ok {
			s.points[g] = struct{}{}
			added++
		}
	}

	return added
}

// Len returns the number of distinct beacons.
func (s *BeaconSet) Len() int {
	return len(s.points)
}

// Sorted returns the beacons in lexicographic order.
func (s *BeaconSet) Sorted() []vec3.Vector {
	out := make([]vec3.Vector, 0, len(s.points))
	for p := range s.points {
		out = append(out, p)
	}
	slices.SortFunc(out, vec3.Compare)

	return out
}

// Resolve places every report in the frame of reports[0].
func Resolve(reports []Report, opts ...Option) (*Result, error) {
	if len(reports) == 0 {
		return nil, ErrNoReports
	}
	m, err := NewMatcher(opts...)
	if err != nil {
		return nil, err
	}
	logf := m.opts.Logf

	ids := make(map[int]bool, len(reports))
	for _, rep := range reports {
		if ids[rep.ID] {
			return nil, fmt.Errorf("scanner %d: %w", rep.ID, ErrDuplicateID)
		}
		ids[rep.ID] = true
	}

	r := &resolver{
		reports:    reports,
		states:     make([]State, len(reports)),
		transforms: make([]vec3.AffineMap, len(reports)),
		beacons:    NewBeaconSet(),
	}
	r.states[0] = Pending
	r.transforms[0] = vec3.IdentityAffine
	r.pending = []int{0}

	res := &Result{Transforms: make(map[int]vec3.AffineMap, len(reports))}
	for len(r.pending) > 0 {
		i := r.pending[len(r.pending)-1]
		r.pending = r.pending[:len(r.pending)-1]

		r.states[i] = Resolved
		r.beacons.Merge(r.transforms[i], reports[i].Beacons)
		res.Transforms[reports[i].ID] = r.transforms[i]
		res.Order = append(res.Order, reports[i].ID)

		for j := range reports {
			if r.states[j] != Unplaced {
				continue
			}
			f, ok := m.Match(reports[i].Beacons, reports[j].Beacons)
			if !ok {
				continue
			}
			logf("scanner %d matches scanner %d", reports[i].ID, reports[j].ID)
			r.transforms[j] = vec3.ComposeAffine(r.transforms[i], f)
			r.states[j] = Pending
			r.pending = append(r.pending, j)
		}
	}

	if lost := r.unplaced(); len(lost) > 0 {
		return nil, fmt.Errorf("scanners %v: %w", lost, ErrDisconnected)
	}
	res.Beacons = r.beacons.Sorted()
	logf("%d beacons from %d scanners", len(res.Beacons), len(reports))

	return res, nil
}

// resolver holds the mutable state of one Resolve call.
type resolver struct {
	reports    []Report
	states     []State
	transforms []vec3.AffineMap
	pending    []int
	beacons    *BeaconSet
}

func (r *resolver) unplaced() []int {
	var lost []int
	for i, s := range r.states {
		if s == Unplaced {
			lost = append(lost, r.reports[i].ID)
		}
	}

	return lost
}

// Solve parses r and returns the number of distinct beacons and the
// largest Manhattan distance between two scanners.
func Solve(r io.Reader, opts ...Option) (beacons, maxDistance int, err error) {
	reports, err := Parse(r)
	if err != nil {
		return 0, 0, err
	}
	res, err := Resolve(reports, opts...)
	if err != nil {
		return 0, 0, err
	}

	return len(res.Beacons), res.MaxDistance(), nil
}
