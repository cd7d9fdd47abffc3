// Package dijkstra defines core types and configuration options
// for the generic shortest-path search.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Search.
var (
	// ErrNegativeWeight indicates that a successor edge had negative cost.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that no goal state is reachable.
	ErrNoPath = errors.New("dijkstra: no path to goal")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Edge is one transition out of a state.
type Edge[S comparable] struct {
	To   S
	Cost int64
}

// Stats counts the work done by one Search call.
type Stats struct {
	// Explored is the number of states settled (popped with final cost).
	Explored int
	// Pushed is the number of heap insertions, stale entries included.
	Pushed int
}

// Result is what Search returns on success.
type Result[S comparable] struct {
	// Goal is the first goal state settled.
	Goal S
	// Cost is the minimum total cost from start to Goal.
	Cost int64
	// Path lists states from start to Goal when WithReturnPath is set.
	Path []S
	// Stats describes the work done.
	Stats Stats
}

// Option configures Search via functional arguments.
type Option func(*Options)

// Options holds the tunables of Search.
type Options struct {
	// ReturnPath enables predecessor tracking.
	ReturnPath bool
	// MaxDistance drops states costlier than this bound.
	MaxDistance int64
	// OnExplore is called with the running Stats after each settled state.
	OnExplore func(Stats)

	err error
}

// DefaultOptions returns no path, no distance cap and a no-op hook.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt64,
		OnExplore:   func(Stats) {},
	}
}

// WithReturnPath asks Search to reconstruct the path.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps the explored cost. d must be non-negative.
func WithMaxDistance(d int64) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = ErrBadMaxDistance
			return
		}
		o.MaxDistance = d
	}
}

// WithOnExplore registers a hook receiving Stats after each settled state.
func WithOnExplore(fn func(Stats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExplore = fn
		}
	}
}
