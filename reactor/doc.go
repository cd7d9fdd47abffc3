// Package reactor replays reactor reboot steps (Advent of Code 2021,
// day 22). Every step switches a cuboid of cubes on or off; the answer is
// how many cubes are on afterwards.
//
// What:
//
//   - Interval, Cuboid and Step model the inclusive integer boxes of the input.
//   - CountNaive replays steps cube by cube in a dense mdarray.Array3D. It
//     only accepts small areas (see MaxNaiveVolume).
//   - Count keeps a list of disjoint lit cuboids. Each step is carved out
//     of every lit cuboid with Subtract, then added back when it turns
//     cubes on.
//
// Complexity:
//
//   - CountNaive: O(steps · volume(area)) time, O(volume(area)) memory.
//   - Count: O(steps · lit) Subtract calls; each call yields at most six
//     pieces, and in practice the lit list stays near linear in steps.
//
// Errors:
//
//   - ErrBadStep: a line that is not "on|off x=a..b,y=c..d,z=e..f" with a ≤ b.
//   - ErrAreaTooLarge: CountNaive was asked for more than MaxNaiveVolume cubes.
//   - ErrNoSteps: the input holds no steps.
package reactor
