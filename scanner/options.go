package scanner

import "fmt"

// Option configures registration via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunables of Match and Resolve.
type Options struct {
	// Threshold is the minimum number of coinciding beacons.
	Threshold int
	// Range bounds, per axis, where a scanner is guaranteed to see beacons.
	Range int
	// Logf receives progress messages. Never nil after DefaultOptions.
	Logf func(format string, v ...any)

	err error
}

// DefaultOptions returns Threshold=12, Range=1000 and a silent logger.
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		Range:     DefaultRange,
		Logf:      func(string, ...any) {},
	}
}

// WithThreshold overrides the overlap threshold. n must be positive.
func WithThreshold(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Threshold must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Threshold = n
	}
}

// WithRange overrides the sensor range. r must be positive.
func WithRange(r int) Option {
	return func(o *Options) {
		if r <= 0 {
			o.err = fmt.Errorf("%w: Range must be positive (%d)", ErrOptionViolation, r)
			return
		}
		o.Range = r
	}
}

// WithLogf routes progress messages to fn. A nil fn is ignored.
func WithLogf(fn func(format string, v ...any)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Logf = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}
