// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

func wallsAt(grid [][]int, wall int, conn Connectivity) *GridGraph {
	gg, err := NewGridGraph(grid, GridOptions{WallValue: wall, Conn: conn})
	if err != nil {
		panic(err)
	}

	return gg
}

// TestConnectedComponents_Simple4 tests ConnectedComponents on a simple 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid (1 = wall, 0 = open):
//
//	1 0 0 1
//	0 0 1 1
//	1 1 0 0
//
// Expected: 2 regions of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	grid := [][]int{
		{1, 0, 0, 1},
		{0, 0, 1, 1},
		{1, 1, 0, 0},
	}
	gg := wallsAt(grid, 1, Conn4)

	comps := gg.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	want := []int{2, 4}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_Diagonal8 tests ConnectedComponents on a 5×5 grid
// using diagonal connectivity (Conn8) to catch “touching corners” regions.
//
// With Conn8, all 9 open cells connect through diagonal hops into a single region;
// with Conn4 each one is isolated.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	grid := [][]int{
		{0, 9, 9, 9, 0},
		{9, 0, 9, 0, 9},
		{9, 9, 0, 9, 9},
		{9, 0, 9, 0, 9},
		{0, 9, 9, 9, 0},
	}
	comps := wallsAt(grid, 9, Conn8).ConnectedComponents()
	if len(comps) != 1 {
		t.Fatalf("got %d components; want 1", len(comps))
	}
	if size := len(comps[0]); size != 9 {
		t.Errorf("component size = %d; want 9", size)
	}

	if n := len(wallsAt(grid, 9, Conn4).ConnectedComponents()); n != 9 {
		t.Errorf("Conn4: got %d components; want 9", n)
	}
}

// TestConnectedComponents_EmptyAndAllWalls tests edge cases:
//   - all walls → zero components
//   - no walls → one component covering the grid
func TestConnectedComponents_EmptyAndAllWalls(t *testing.T) {
	grid := [][]int{
		{9, 9},
		{9, 9},
	}
	if comps := wallsAt(grid, 9, Conn4).ConnectedComponents(); len(comps) != 0 {
		t.Errorf("all-wall: got %d components; want 0", len(comps))
	}

	gg, _ := From2D(grid, Conn4)
	comps := gg.ConnectedComponents()
	if len(comps) != 1 || len(comps[0]) != 4 {
		t.Errorf("no walls: got %v; want one component of 4", comps)
	}
}

// TestConnectedComponents_LargeRegion floods a single 1000×1000 region;
// a recursive fill would need a million nested calls here.
func TestConnectedComponents_LargeRegion(t *testing.T) {
	if testing.Short() {
		t.Skip("large grid")
	}
	const n = 1000
	grid := make([][]int, n)
	for y := range grid {
		grid[y] = make([]int, n)
	}
	comps := wallsAt(grid, 9, Conn4).ConnectedComponents()
	if len(comps) != 1 || len(comps[0]) != n*n {
		t.Fatalf("got %d components; want one of size %d", len(comps), n*n)
	}
}

// TestConnectedComponents_InvalidRects ensures From2D rejects bad inputs.
func TestConnectedComponents_InvalidRects(t *testing.T) {
	if _, err := From2D(nil, Conn4); err != ErrEmptyGrid {
		t.Errorf("nil grid: got %v; want ErrEmptyGrid", err)
	}
	if _, err := From2D([][]int{{1}, {}}, Conn4); err != ErrNonRectangular {
		t.Errorf("jagged grid: got %v; want ErrNonRectangular", err)
	}
}
