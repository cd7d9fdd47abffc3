package vec3

// RotationCount is the number of proper rotations of an axis-aligned cube.
const RotationCount = 24

// Rotations returns the 24 proper rotations in a fixed order.
//
// The first row ranges over the six signed axes, the second row over the
// six signed axes again, and the third row is their cross product. Pairs
// whose cross product vanishes (parallel rows) are skipped. Taking z = x × y
// instead of trying both signs keeps only right-handed frames, which rules
// out the 24 reflections among the 48 signed permutations.
func Rotations() []LinearMap {
	out := make([]LinearMap, 0, RotationCount)
	for _, x := range Axes {
		for _, y := range Axes {
			z := x.Cross(y)
			if z.IsZero() {
				continue
			}
			out = append(out, LinearMap{X: x, Y: y, Z: z})
		}
	}

	return out
}
