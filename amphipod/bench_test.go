package amphipod_test

import (
	"testing"

	"github.com/katalvlaran/aoc2021/amphipod"
)

func BenchmarkOrganizeFolded(b *testing.B) {
	burrow, err := amphipod.NewBurrow([4]string{"BA", "CD", "BC", "DA"})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := amphipod.Organize(burrow); err != nil {
			b.Fatal(err)
		}
	}
}
