package vec3

import "fmt"

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the inner product v·w.
func (v Vector) Dot(w Vector) int {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v × w.
func (v Vector) Cross(w Vector) Vector {
	return Vector{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// IsZero reports whether v is the origin.
func (v Vector) IsZero() bool {
	return v == Zero
}

// Norm1 returns the Manhattan length |x|+|y|+|z|.
func (v Vector) Norm1() int {
	return abs(v.X) + abs(v.Y) + abs(v.Z)
}

// NormInf returns the Chebyshev length max(|x|,|y|,|z|).
func (v Vector) NormInf() int {
	return max(abs(v.X), abs(v.Y), abs(v.Z))
}

// ManhattanDistance returns |v-w|₁.
func (v Vector) ManhattanDistance(w Vector) int {
	return v.Sub(w).Norm1()
}

// Less orders vectors lexicographically by X, then Y, then Z.
func (v Vector) Less(w Vector) bool {
	if v.X != w.X {
		return v.X < w.X
	}
	if v.Y != w.Y {
		return v.Y < w.Y
	}

	return v.Z < w.Z
}

// Compare is a three-way Less, usable with slices.SortFunc.
func Compare(v, w Vector) int {
	switch {
	case v.Less(w):
		return -1
	case w.Less(v):
		return 1
	default:
		return 0
	}
}

// String renders v as "(x,y,z)".
func (v Vector) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
