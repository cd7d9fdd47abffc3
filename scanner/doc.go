// Package scanner reconstructs a beacon map from overlapping scanner
// reports (Advent of Code 2021, day 19).
//
// Every scanner sees nearby beacons in its own frame: unknown origin and
// one of 24 unknown axis orientations. Two scanners overlap when some
// proper rotation plus integer translation maps at least Threshold (12)
// beacons of one report exactly onto beacons of the other.
//
// Pairwise registration (Matcher.Match):
//
//  1. For every a ∈ A, b ∈ B and rotation R, assume R·b + t = a, so t = a − R·b.
//  2. Map every point of B through (R, t). Count the mapped points that lie
//     within the sensor Range of A's origin (Chebyshev norm) and coincide
//     with a point of A.
//  3. Accept the first hypothesis whose count reaches Threshold.
//
// The search is exhaustive over |A|·|B|·24 hypotheses and uses exact
// integer equality only, so it is deterministic. When several transforms
// reach the threshold the first in enumeration order wins.
//
// Global resolution (Resolve) is a worklist walk. The first report is the
// reference frame and starts Pending with the identity transform. Popping
// a Pending scanner marks it Resolved, merges its beacons into the global
// set and tries to register every still Unplaced scanner against it. A
// match composes the partner's transform with the pairwise one and pushes
// the new scanner as Pending. Anything still Unplaced when the worklist
// drains is reported as ErrDisconnected.
//
// Complexity:
//
//   - Match: O(|A|·|B|²·24) time worst case, O(|A|) memory.
//   - Resolve: O(S²) calls to Match for S scanners.
//
// Errors:
//
//   - ErrNoReports: the input holds no scanner sections.
//   - ErrMalformedHeader, ErrMalformedPoint: parse failures (with line number).
//   - ErrDuplicateID: two reports share a scanner number.
//   - ErrDisconnected: some scanner overlaps none of the placed ones.
//   - ErrOptionViolation: a non-positive threshold or range was supplied.
package scanner
