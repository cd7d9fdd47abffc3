package vec3

import "fmt"

// Apply returns Linear·v + Translation.
func (a AffineMap) Apply(v Vector) Vector {
	return a.Linear.Apply(v).Add(a.Translation)
}

// ComposeAffine returns a∘b: apply b, then a.
func ComposeAffine(a, b AffineMap) AffineMap {
	return AffineMap{
		Linear:      Compose(a.Linear, b.Linear),
		Translation: a.Linear.Apply(b.Translation).Add(a.Translation),
	}
}

// Inverse returns the affine map undoing a. It fails with ErrNotInvertible
// under the same conditions as LinearMap.Inverse.
func (a AffineMap) Inverse() (AffineMap, error) {
	inv, err := a.Linear.Inverse()
	if err != nil {
		return AffineMap{}, err
	}

	return AffineMap{
		Linear:      inv,
		Translation: inv.Apply(a.Translation).Neg(),
	}, nil
}

// String renders a as "linear + translation".
func (a AffineMap) String() string {
	return fmt.Sprintf("%v + %v", a.Linear, a.Translation)
}
