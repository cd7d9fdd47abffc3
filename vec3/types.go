package vec3

import "errors"

// Sentinel errors for vec3 operations.
var (
	// ErrNotInvertible indicates a linear map whose determinant is not ±1.
	ErrNotInvertible = errors.New("vec3: linear map is not invertible over the integers")
)

// Vector is an integer point or displacement in 3-D space.
type Vector struct {
	X, Y, Z int
}

// LinearMap is a 3×3 integer matrix. X, Y and Z are its rows, so
// Apply(v) = (X·v, Y·v, Z·v).
type LinearMap struct {
	X, Y, Z Vector
}

// AffineMap applies Linear and then adds Translation.
type AffineMap struct {
	Linear      LinearMap
	Translation Vector
}

var (
	// Zero is the origin.
	Zero = Vector{}
	// UnitX, UnitY and UnitZ are the positive unit axes.
	UnitX = Vector{X: 1}
	UnitY = Vector{Y: 1}
	UnitZ = Vector{Z: 1}

	// Axes lists the six signed unit axes: +X, +Y, +Z, -X, -Y, -Z.
	Axes = [6]Vector{UnitX, UnitY, UnitZ, UnitX.Neg(), UnitY.Neg(), UnitZ.Neg()}

	// Identity is the identity linear map.
	Identity = LinearMap{X: UnitX, Y: UnitY, Z: UnitZ}

	// IdentityAffine maps every point to itself.
	IdentityAffine = AffineMap{Linear: Identity}
)
