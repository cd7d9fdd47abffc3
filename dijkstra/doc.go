// Package dijkstra provides a generic implementation of Dijkstra's
// shortest-path algorithm over implicit state spaces with non-negative
// transition costs.
//
// Overview:
//
//   - Search explores states of any comparable type S, starting from one
//     start state, until a goal predicate holds.
//   - Successors are produced on demand by a caller-supplied function, so
//     the graph never has to be materialised (grid cells, puzzle boards).
//   - It relies on a min-heap (priority queue) to always expand the
//     next-cheapest state.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - WithReturnPath: keep predecessors and return the state sequence to the goal.
//   - WithMaxDistance: abandon states whose cost exceeds a cap.
//   - WithOnExplore: observe Stats after each settled state (progress logging).
//
// Stats are owned by the call. Every Search returns its own counters and
// passes them to its own hook, so concurrent or repeated searches never
// share a counter.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) for V reachable states and E transitions.
//   - Space: O(V + E) under the “lazy decrease-key” strategy.
//
// Error handling (sentinel errors):
//
//   - ErrNegativeWeight: a successor edge has negative cost.
//   - ErrNoPath:         the goal is unreachable (or beyond MaxDistance).
//   - ErrBadMaxDistance: WithMaxDistance got a negative value.
package dijkstra
