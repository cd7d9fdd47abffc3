package mdarray

import "fmt"

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

func arrayErrorf(method string, x, y, z int, err error) error {
	return fmt.Errorf("Array3D.%s(%d,%d,%d): %w", method, x, y, z, err)
}

// New allocates a w×h×d array with every cell set to fill.
func New[T any](fill T, w, h, d int) (*Array3D[T], error) {
	if w <= 0 || h <= 0 || d <= 0 {
		return nil, fmt.Errorf("New(%d,%d,%d): %w", w, h, d, ErrBadShape)
	}
	a := &Array3D[T]{w: w, h: h, d: d, data: make([]T, w*h*d)}
	a.Fill(fill)

	return a, nil
}

// Dims returns width, height and depth.
func (a *Array3D[T]) Dims() (w, h, d int) {
	return a.w, a.h, a.d
}

// Len returns the number of cells.
func (a *Array3D[T]) Len() int {
	return len(a.data)
}

// InBounds reports whether (x,y,z) addresses a cell.
func (a *Array3D[T]) InBounds(x, y, z int) bool {
	return x >= 0 && x < a.w && y >= 0 && y < a.h && z >= 0 && z < a.d
}

func (a *Array3D[T]) offset(x, y, z int) int {
	return x + (y+z*a.h)*a.w
}

// At returns the value at (x,y,z).
func (a *Array3D[T]) At(x, y, z int) (T, error) {
	if !a.InBounds(x, y, z) {
		var zero T
		return zero, arrayErrorf(ctxAt, x, y, z, ErrOutOfRange)
	}

	return a.data[a.offset(x, y, z)], nil
}

// Set stores v at (x,y,z).
func (a *Array3D[T]) Set(x, y, z int, v T) error {
	if !a.InBounds(x, y, z) {
		return arrayErrorf(ctxSet, x, y, z, ErrOutOfRange)
	}
	a.data[a.offset(x, y, z)] = v

	return nil
}

// Fill sets every cell to v.
func (a *Array3D[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Each calls fn for every cell, x fastest, then y, then z.
func (a *Array3D[T]) Each(fn func(x, y, z int, v T)) {
	i := 0
	for z := 0; z < a.d; z++ {
		for y := 0; y < a.h; y++ {
			for x := 0; x < a.w; x++ {
				fn(x, y, z, a.data[i])
				i++
			}
		}
	}
}

// Count returns how many cells satisfy pred.
func (a *Array3D[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range a.data {
		if pred(v) {
			n++
		}
	}

	return n
}
