package gridgraph

// ConnectedComponents finds all contiguous regions of open cells
// (CellValues[y][x] < WallValue), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in discovery order. Components are ordered by their first
// cell in row-major order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// The fill keeps its frontier on an explicit stack; a region spanning the
// whole grid costs O(W·H) heap memory and constant call depth.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	total := gg.Len()
	seen := make([]bool, total)
	var comps [][]int
	var nbuf []int

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] || gg.IsWall(i0) {
			continue
		}
		stack := []int{i0}
		seen[i0] = true
		var comp []int

		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, u)
			nbuf = gg.Neighbors(nbuf[:0], u)
			for _, v := range nbuf {
				if seen[v] || gg.IsWall(v) {
					continue
				}
				seen[v] = true
				stack = append(stack, v)
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
