package chiton_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/chiton"
	"github.com/katalvlaran/aoc2021/dijkstra"
	"github.com/katalvlaran/aoc2021/gridgraph"
)

const example = `1163751742
1381373672
2136511328
3694931569
7463417111
1319128137
1359912421
3125421639
1293138521
2311944581
`

func TestSolve_Example(t *testing.T) {
	single, full, err := chiton.Solve(strings.NewReader(example))
	require.NoError(t, err)
	assert.Equal(t, int64(40), single)
	assert.Equal(t, int64(315), full)
}

func TestExpand_Wraps(t *testing.T) {
	got, err := chiton.Expand([][]int{{8}}, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{8, 9, 1},
		{9, 1, 2},
		{1, 2, 3},
	}, got)
}

func TestExpand_Errors(t *testing.T) {
	_, err := chiton.Expand([][]int{{1}}, 0)
	require.ErrorIs(t, err, chiton.ErrBadTiles)
	_, err = chiton.Expand(nil, 1)
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
	_, err = chiton.Expand([][]int{{1, 2}, {3}}, 1)
	require.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}

func TestLowestRisk_StartIsFree(t *testing.T) {
	risk, err := chiton.LowestRisk([][]int{{9, 1}}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), risk)
}

func TestLowestRisk_ExploreHook(t *testing.T) {
	tile, err := gridgraph.ParseDigits(strings.NewReader(example))
	require.NoError(t, err)

	var last dijkstra.Stats
	risk, err := chiton.LowestRisk(tile, 1, dijkstra.WithOnExplore(func(s dijkstra.Stats) { last = s }))
	require.NoError(t, err)
	assert.Equal(t, int64(40), risk)
	assert.Positive(t, last.Explored)
	assert.LessOrEqual(t, last.Explored, 100)
}
