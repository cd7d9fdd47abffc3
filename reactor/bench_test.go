package reactor_test

import (
	"testing"

	"github.com/katalvlaran/aoc2021/reactor"
)

func BenchmarkCountNaive(b *testing.B) {
	steps := loadSteps(b, "example.txt")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := reactor.CountNaive(steps, reactor.InitArea); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCount(b *testing.B) {
	steps := loadSteps(b, "example.txt")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reactor.Count(steps, nil)
	}
}
