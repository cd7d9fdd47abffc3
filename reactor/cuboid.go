package reactor

// axes exposes the three intervals of c by index.
func (c *Cuboid) axes() [3]*Interval {
	return [3]*Interval{&c.X, &c.Y, &c.Z}
}

// Volume returns the number of cubes in c.
func (c Cuboid) Volume() uint64 {
	return c.X.Len() * c.Y.Len() * c.Z.Len()
}

// Intersect returns the overlap of c and o and whether it is non-empty.
// The overlap is meaningless when ok is false.
func (c Cuboid) Intersect(o Cuboid) (Cuboid, bool) {
	x, okX := c.X.Intersect(o.X)
	y, okY := c.Y.Intersect(o.Y)
	z, okZ := c.Z.Intersect(o.Z)

	return Cuboid{x, y, z}, okX && okY && okZ
}

// Intersects reports whether c and o share at least one cube.
func (c Cuboid) Intersects(o Cuboid) bool {
	_, ok := c.Intersect(o)

	return ok
}

// Contains reports whether o lies entirely inside c.
func (c Cuboid) Contains(o Cuboid) bool {
	return c.X.Lo <= o.X.Lo && o.X.Hi <= c.X.Hi &&
		c.Y.Lo <= o.Y.Lo && o.Y.Hi <= c.Y.Hi &&
		c.Z.Lo <= o.Z.Lo && o.Z.Hi <= c.Z.Hi
}

// Subtract returns disjoint cuboids covering c minus o, at most six of
// them.
//
// Notes:
//   - Slabs are cut along x first, then y, then z. Each cut narrows the
//     remaining core to the overlap on that axis, so pieces never overlap.
//   - Disjoint inputs return []Cuboid{c}; o covering c returns nil.
//
// Complexity: O(1).
func (c Cuboid) Subtract(o Cuboid) []Cuboid {
	in, ok := c.Intersect(o)
	if !ok {
		return []Cuboid{c}
	}
	if in == c {
		return nil
	}

	var out []Cuboid
	cur := c
	cut := in.axes()
	for axis, iv := range cur.axes() {
		lo, hi := *iv, *iv
		lo.Hi = cut[axis].Lo - 1
		hi.Lo = cut[axis].Hi + 1
		if lo.Len() > 0 {
			piece := cur
			*piece.axes()[axis] = lo
			out = append(out, piece)
		}
		if hi.Len() > 0 {
			piece := cur
			*piece.axes()[axis] = hi
			out = append(out, piece)
		}
		*iv = *cut[axis]
	}

	return out
}
