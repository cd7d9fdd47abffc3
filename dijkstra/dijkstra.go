// Package dijkstra implements Dijkstra's shortest-path algorithm on
// implicit, generically typed state spaces.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - A negative successor cost aborts the search with ErrNegativeWeight.
//   - Ties are broken by insertion order, so equal-cost searches are deterministic
//     as long as the successor function is.
package dijkstra

import (
	"container/heap"
	"fmt"
)

// Search returns the cheapest path from start to any state satisfying goal.
//
// next(s) lists the transitions out of s. It is called once per settled
// state. goal is evaluated when a state is settled, so the returned cost
// is optimal.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Search[S comparable](start S, next func(S) []Edge[S], goal func(S) bool, opts ...Option) (Result[S], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result[S]{}, cfg.err
	}

	r := &runner[S]{
		options: cfg,
		dist:    map[S]int64{start: 0},
		visited: make(map[S]bool),
	}
	if cfg.ReturnPath {
		r.prev = make(map[S]S)
	}
	r.push(start, 0)

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[S])
		u, d := item.state, item.dist
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		r.stats.Explored++
		cfg.OnExplore(r.stats)

		if goal(u) {
			res := Result[S]{Goal: u, Cost: d, Stats: r.stats}
			if cfg.ReturnPath {
				res.Path = r.path(start, u)
			}

			return res, nil
		}
		if err := r.relax(u, d, next(u)); err != nil {
			return Result[S]{Stats: r.stats}, err
		}
	}

	return Result[S]{Stats: r.stats}, ErrNoPath
}

// runner holds the mutable state for a single Search execution.
type runner[S comparable] struct {
	options Options
	dist    map[S]int64 // best known cost per state
	prev    map[S]S     // predecessor on the best path (ReturnPath only)
	visited map[S]bool  // settled states
	pq      nodePQ[S]
	seq     int
	stats   Stats
}

func (r *runner[S]) push(s S, d int64) {
	heap.Push(&r.pq, &nodeItem[S]{state: s, dist: d, seq: r.seq})
	r.seq++
	r.stats.Pushed++
}

// relax improves the cost of every successor of u reachable through edges.
func (r *runner[S]) relax(u S, du int64, edges []Edge[S]) error {
	for _, e := range edges {
		if e.Cost < 0 {
			return fmt.Errorf("%w: cost=%d", ErrNegativeWeight, e.Cost)
		}
		if r.visited[e.To] {
			continue
		}
		nd := du + e.Cost
		if nd > r.options.MaxDistance {
			continue
		}
		if old, ok := r.dist[e.To]; ok && nd >= old {
			continue
		}
		r.dist[e.To] = nd
		if r.prev != nil {
			r.prev[e.To] = u
		}
		r.push(e.To, nd)
	}

	return nil
}

func (r *runner[S]) path(start, goal S) []S {
	var rev []S
	for s := goal; ; s = r.prev[s] {
		rev = append(rev, s)
		if s == start {
			break
		}
	}
	out := make([]S, len(rev))
	for i, s := range rev {
		out[len(rev)-1-i] = s
	}

	return out
}

// nodeItem represents a state and its tentative cost.
type nodeItem[S comparable] struct {
	state S
	dist  int64
	seq   int // insertion order, breaks cost ties
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then seq.
type nodePQ[S comparable] []*nodeItem[S]

// Len returns the number of items in the heap.
func (pq nodePQ[S]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ[S]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ[S]) Push(x any) { *pq = append(*pq, x.(*nodeItem[S])) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns any that must be cast to *nodeItem.
func (pq *nodePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
