package scanner

import "github.com/katalvlaran/aoc2021/vec3"

// Matcher performs pairwise registration with fixed options.
type Matcher struct {
	opts      Options
	rotations []vec3.LinearMap
}

// NewMatcher validates opts and returns a Matcher.
func NewMatcher(opts ...Option) (*Matcher, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Matcher{opts: cfg, rotations: vec3.Rotations()}, nil
}

// Match looks for a transform f with f(b) sharing at least Threshold
// points with a. f maps b's frame into a's frame.
//
// Both readings are treated as sets: a beacon listed twice counts once,
// and a reading with fewer than Threshold distinct beacons never matches.
//
// Search: every pairing of a point of a with a point of b under each of
// the 24 rotations fixes a candidate translation. The first candidate in
// that order that reaches Threshold wins, so results are deterministic.
//
// Complexity: O(|A|·|B|·24·|B|) time in the worst case, O(|A|+|B|) space.
func (m *Matcher) Match(a, b []vec3.Vector) (vec3.AffineMap, bool) {
	need := m.opts.Threshold
	a, b = distinct(a), distinct(b)
	if len(a) < need || len(b) < need {
		return vec3.AffineMap{}, false
	}

	seen := make(map[vec3.Vector]struct{}, len(a))
	for _, p := range a {
		seen[p] = struct{}{}
	}

	for _, pa := range a {
		for _, pb := range b {
			for _, r := range m.rotations {
				f := vec3.AffineMap{Linear: r, Translation: pa.Sub(r.Apply(pb))}
				if m.overlap(f, b, seen) >= need {
					return f, true
				}
			}
		}
	}

	return vec3.AffineMap{}, false
}

// distinct returns pts without repeats, keeping first occurrences in
// order. pts is returned as is when it has none.
func distinct(pts []vec3.Vector) []vec3.Vector {
	idx := make(map[vec3.Vector]struct{}, len(pts))
	out := pts[:0:0]
	for _, p := range pts {
		if _, dup := idx[p]; dup {
			continue
		}
		idx[p] = struct{}{}
		out = append(out, p)
	}
	if len(out) == len(pts) {
		return pts
	}

	return out
}

// overlap counts points of b that f maps inside the sensor range onto a
// point of seen. b must hold no repeats. It stops as soon as Threshold is reached or can no
// longer be reached.
func (m *Matcher) overlap(f vec3.AffineMap, b []vec3.Vector, seen map[vec3.Vector]struct{}) int {
	need := m.opts.Threshold
	count := 0
	for i, q := range b {
		if count+len(b)-i < need {
			break
		}
		p := f.Apply(q)
		if p.NormInf() > m.opts.Range {
			continue
		}
		if _, ok := seen[p]; ok {
			count++
			if count >= need {
				break
			}
		}
	}

	return count
}

// Match registers b against a with default options.
func Match(a, b []vec3.Vector) (vec3.AffineMap, bool) {
	m, _ := NewMatcher()
	return m.Match(a, b)
}
