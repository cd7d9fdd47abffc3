// Package aoc2021 collects Advent of Code 2021 solvers built on a few
// small reusable packages.
//
// Packages:
//
//	vec3/      — integer vectors, 3×3 linear maps, affine maps, the 24 rotations
//	scanner/   — day 19: beacon scanner registration
//	mdarray/   — dense generic 3-D array
//	reactor/   — day 22: reactor reboot cuboids (mdarray brute force + splitting)
//	gridgraph/ — 2-D integer grids: neighbors, connected components
//	heightmap/ — day 9: low points and basins (gridgraph)
//	dijkstra/  — generic shortest path over comparable states
//	chiton/    — day 15: lowest-risk path (gridgraph + dijkstra)
//	amphipod/  — day 23: burrow organiser (dijkstra)
//
// The aoc2021 command (cmd/aoc2021) runs one day:
//
//	go run ./cmd/aoc2021 -day 19 -input inputs/day19.txt
//
// It prints the part-one and part-two answers on separate lines. Every
// error is fatal at the command boundary; the packages themselves return
// sentinel errors wrapped with context and never panic on bad input.
package aoc2021
