package mdarray

import "errors"

var (
	// ErrBadShape is returned when a requested dimension is not positive.
	ErrBadShape = errors.New("mdarray: invalid shape")

	// ErrOutOfRange indicates an index outside [0,w)×[0,h)×[0,d).
	ErrOutOfRange = errors.New("mdarray: index out of range")
)

// Array3D is a dense w×h×d grid of T.
type Array3D[T any] struct {
	w, h, d int
	data    []T
}
