package scanner_test

import (
	"testing"

	"github.com/katalvlaran/aoc2021/scanner"
)

// BenchmarkMatch measures one successful pairwise registration.
func BenchmarkMatch(b *testing.B) {
	reports := loadExample(b)
	m, err := scanner.NewMatcher()
	if err != nil {
		b.Fatalf("NewMatcher: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := m.Match(reports[0].Beacons, reports[1].Beacons); !ok {
			b.Fatal("expected a match")
		}
	}
}

// BenchmarkResolve measures the full five-scanner resolution.
func BenchmarkResolve(b *testing.B) {
	reports := loadExample(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := scanner.Resolve(reports); err != nil {
			b.Fatal(err)
		}
	}
}
