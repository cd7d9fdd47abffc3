package scanner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/scanner"
	"github.com/katalvlaran/aoc2021/vec3"
)

// loadExample parses the five-scanner sample from the puzzle statement.
func loadExample(t testing.TB) []scanner.Report {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", "example.txt"))
	require.NoError(t, err)
	defer f.Close()

	reports, err := scanner.Parse(f)
	require.NoError(t, err)

	return reports
}

// overlapping builds a report that shares exactly k beacons with a under
// the transform toA, plus three decoys that land near (but never on)
// beacons of a.
func overlapping(t *testing.T, a []vec3.Vector, toA vec3.AffineMap, k int) []vec3.Vector {
	t.Helper()
	fromA, err := toA.Inverse()
	require.NoError(t, err)

	b := make([]vec3.Vector, 0, k+3)
	for i := 0; i < k; i++ {
		b = append(b, fromA.Apply(a[i]))
	}
	for i := 1; i <= 3; i++ {
		decoy := a[19+i].Add(vec3.Vector{X: 37 * i, Y: -11 * i, Z: 5*i + 1})
		b = append(b, fromA.Apply(decoy))
	}

	return b
}
