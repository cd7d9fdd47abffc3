// Command aoc2021 runs one Advent of Code 2021 solver and prints its two
// answers, one per line.
//
// Usage:
//
//	aoc2021 -day 19 [-input inputs/day19.txt] [-v]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/aoc2021/internal/monitoring"
	"github.com/katalvlaran/aoc2021/internal/solvers"
)

func main() {
	var (
		day     = flag.Int("day", 0, "puzzle day to solve (required)")
		input   = flag.String("input", "", "puzzle input file (default inputs/dayN.txt)")
		verbose = flag.Bool("v", false, "log solver diagnostics to stderr")
		every   = flag.Int("progress", 10000, "with -v, log search progress every N explored states")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: aoc2021 -day N [-input FILE] [-v]\n\nDays: %v\n\n", solvers.Days())
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("aoc2021: ")

	if *day == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if !*verbose {
		monitoring.SetLogger(nil)
	}

	logf := monitoring.Tagged(fmt.Sprintf("day %d", *day))
	var cfg solvers.Config
	if *verbose {
		cfg = solvers.Config{Logf: logf, ProgressEvery: *every}
	}
	answers, err := run(*day, *input, cfg, os.Stdout)
	if err != nil {
		log.Fatalf("day %d: %v", *day, err)
	}
	logf("done: %v", answers)
}

func run(day int, path string, cfg solvers.Config, out io.Writer) (solvers.Answers, error) {
	solve, err := solvers.Lookup(day)
	if err != nil {
		return solvers.Answers{}, err
	}
	if path == "" {
		path = fmt.Sprintf("inputs/day%d.txt", day)
	}
	f, err := os.Open(path)
	if err != nil {
		return solvers.Answers{}, err
	}
	defer f.Close()

	answers, err := solve(f, cfg)
	if err != nil {
		return solvers.Answers{}, fmt.Errorf("%s: %w", path, err)
	}
	for _, a := range answers {
		fmt.Fprintln(out, a)
	}

	return answers, nil
}
