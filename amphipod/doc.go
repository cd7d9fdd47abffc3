// Package amphipod organises amphipods into their side rooms with the
// least total energy (Advent of Code 2021, day 23).
//
// Burrow layout:
//
//	#############
//	#...........#   hallway cells 0..10
//	###B#C#B#D###   rooms 0..3, doors at hallway 2, 4, 6, 8
//	  #A#D#C#A#
//	  #########
//
// Rules:
//
//   - Amber (A), Bronze (B), Copper (C) and Desert (D) amphipods spend
//     1, 10, 100 and 1000 energy per step.
//   - Nobody stops on a hallway cell right outside a room.
//   - An amphipod enters only its own room, and only when that room holds
//     no strangers.
//   - Once in the hallway an amphipod stays put until it can walk into its
//     own room.
//
// Search:
//
//   - States are explored with dijkstra.Search. Whenever an amphipod in
//     the hallway can reach its room, that move is the only successor:
//     going home early never costs more.
//   - Progress is reported through WithProgress, driven by the
//     per-search dijkstra.Stats rather than any shared counter.
//
// Errors:
//
//   - ErrBadLayout: the diagram does not describe a valid burrow.
//   - ErrBadDepth: Unfold was applied to a burrow that is not two deep.
//   - ErrOptionViolation: WithProgress got a negative interval.
//   - dijkstra.ErrNoPath: no sequence of moves organises the burrow.
package amphipod
