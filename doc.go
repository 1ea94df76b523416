// Package aoc2025 is a small toolkit of grid and graph primitives for
// Advent of Code 2025 style puzzles, plus the solvers built on it.
//
// What is in here?
//
//	A set of plain value types and helpers, no global state, no locks:
//		• Directions: eight compass directions, rotation, symbols and letters
//		• Coordinates: 2D and 3D points, adjacency, Manhattan distance, sets
//		• Grids: parse text into coordinate maps and render them back
//		• Ranges: inclusive numeric intervals, union and consolidation
//		• Movables: objects that push each other along a direction
//		• Connectivity: elements that merge into shared groups (circuits)
//
// Packages:
//
//	coord/         Direction, Coord, Coord3, Set, Pairs
//	grid/          MapChars, FindSet, ParseCoordinates, Print*, Regions
//	numrange/      Range[T], Union, Consolidate, Count
//	movable/       Object, PositionMap, CanMove, Push
//	connectivity/  Element[T], Group[T], Groups, Links
//	internal/days/  puzzle solvers for the days that use the toolkit
//	cmd/aoc2025/   command-line runner
//
// Quick ASCII example, a beam entering at S and splitting at ^:
//
//	..S..
//	..|..
//	.|^|.
//
// Coordinates parsed from text are 1-indexed: the first rune of the first
// line is (1, 1).
package aoc2025
