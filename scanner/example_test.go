package scanner_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/aoc2021/scanner"
)

// ExampleSolve resolves the five-scanner sample from the puzzle statement.
func ExampleSolve() {
	f, err := os.Open("testdata/example.txt")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	beacons, dist, err := scanner.Solve(f)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("beacons:", beacons)
	fmt.Println("max distance:", dist)
	// Output:
	// beacons: 79
	// max distance: 3621
}
