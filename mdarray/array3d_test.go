package mdarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/mdarray"
)

func TestNew_InvalidShape(t *testing.T) {
	for _, dims := range [][3]int{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}, {-2, 3, 3}} {
		_, err := mdarray.New(false, dims[0], dims[1], dims[2])
		require.ErrorIs(t, err, mdarray.ErrBadShape, "dims %v", dims)
	}
}

func TestNew_FilledAndDims(t *testing.T) {
	a, err := mdarray.New(7, 2, 3, 4)
	require.NoError(t, err)

	w, h, d := a.Dims()
	assert.Equal(t, [3]int{2, 3, 4}, [3]int{w, h, d})
	assert.Equal(t, 24, a.Len())
	assert.Equal(t, 24, a.Count(func(v int) bool { return v == 7 }))
}

func TestAtSet_OutOfRange(t *testing.T) {
	a, err := mdarray.New(0, 2, 2, 2)
	require.NoError(t, err)

	_, err = a.At(2, 0, 0)
	require.ErrorIs(t, err, mdarray.ErrOutOfRange)
	_, err = a.At(0, -1, 0)
	require.ErrorIs(t, err, mdarray.ErrOutOfRange)
	require.ErrorIs(t, a.Set(0, 0, 2, 1), mdarray.ErrOutOfRange)
}

// TestSet_DistinctCells writes a unique value to every cell of a
// non-cubic array and reads them back. A layout that mixed up height and
// depth would alias cells and fail here.
func TestSet_DistinctCells(t *testing.T) {
	const w, h, d = 3, 5, 2
	a, err := mdarray.New(-1, w, h, d)
	require.NoError(t, err)

	id := func(x, y, z int) int { return x*100 + y*10 + z }
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				require.NoError(t, a.Set(x, y, z, id(x, y, z)))
			}
		}
	}
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v, err := a.At(x, y, z)
				require.NoError(t, err)
				require.Equal(t, id(x, y, z), v)
			}
		}
	}
	assert.Zero(t, a.Count(func(v int) bool { return v < 0 }))
}

func TestEach_Order(t *testing.T) {
	a, err := mdarray.New(false, 2, 2, 2)
	require.NoError(t, err)
	require.NoError(t, a.Set(1, 0, 1, true))

	var order [][3]int
	var hits int
	a.Each(func(x, y, z int, v bool) {
		order = append(order, [3]int{x, y, z})
		if v {
			hits++
			assert.Equal(t, [3]int{1, 0, 1}, [3]int{x, y, z})
		}
	})
	require.Len(t, order, 8)
	assert.Equal(t, [3]int{0, 0, 0}, order[0])
	assert.Equal(t, [3]int{1, 0, 0}, order[1])
	assert.Equal(t, [3]int{0, 1, 0}, order[2])
	assert.Equal(t, [3]int{0, 0, 1}, order[4])
	assert.Equal(t, 1, hits)
}

func TestFill(t *testing.T) {
	a, err := mdarray.New("x", 2, 1, 1)
	require.NoError(t, err)
	a.Fill("y")
	v, err := a.At(1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "y", v)
}
