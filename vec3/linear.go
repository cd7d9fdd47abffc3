package vec3

import "fmt"

// Apply returns m·v.
func (m LinearMap) Apply(v Vector) Vector {
	return Vector{X: m.X.Dot(v), Y: m.Y.Dot(v), Z: m.Z.Dot(v)}
}

// Transpose swaps rows and columns.
func (m LinearMap) Transpose() LinearMap {
	return LinearMap{
		X: Vector{X: m.X.X, Y: m.Y.X, Z: m.Z.X},
		Y: Vector{X: m.X.Y, Y: m.Y.Y, Z: m.Z.Y},
		Z: Vector{X: m.X.Z, Y: m.Y.Z, Z: m.Z.Z},
	}
}

// Compose returns a∘b, the map that applies b and then a.
// The columns of b are pushed through a and the result transposed back.
func Compose(a, b LinearMap) LinearMap {
	bt := b.Transpose()

	return LinearMap{
		X: a.Apply(bt.X),
		Y: a.Apply(bt.Y),
		Z: a.Apply(bt.Z),
	}.Transpose()
}

// Det returns the determinant, computed as the triple product X·(Y×Z).
func (m LinearMap) Det() int {
	return m.X.Dot(m.Y.Cross(m.Z))
}

// IsProperRotation reports whether m is orthogonal with determinant +1,
// i.e. one of the 24 rotational symmetries of the cube when entries are
// restricted to {-1,0,1}.
func (m LinearMap) IsProperRotation() bool {
	return Compose(m, m.Transpose()) == Identity && m.Det() == 1
}

// Inverse returns the integer inverse of m.
//
// The adjugate is built from pairwise cross products of the rows; for a
// proper rotation it equals the transpose. Dividing by the determinant is
// exact only when det = ±1, so any other determinant yields ErrNotInvertible.
func (m LinearMap) Inverse() (LinearMap, error) {
	det := m.Det()
	if det != 1 && det != -1 {
		return LinearMap{}, fmt.Errorf("Inverse: det=%d: %w", det, ErrNotInvertible)
	}
	// Columns of the adjugate are Y×Z, Z×X and X×Y.
	adj := LinearMap{
		X: m.Y.Cross(m.Z),
		Y: m.Z.Cross(m.X),
		Z: m.X.Cross(m.Y),
	}.Transpose()
	if det == -1 {
		adj = LinearMap{X: adj.X.Neg(), Y: adj.Y.Neg(), Z: adj.Z.Neg()}
	}

	return adj, nil
}

// String renders m one row per bracket group.
func (m LinearMap) String() string {
	return fmt.Sprintf("[%v %v %v]", m.X, m.Y, m.Z)
}
