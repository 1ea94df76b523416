// Package coord provides the coordinate primitives every puzzle solver in
// github.com/katalvlaran/aoc2025 is built on.
//
// What:
//
//   - Direction: an 8-way compass listed clockwise from East, with display
//     glyphs, single-letter codes, unit translation vectors, rotation and
//     inversion.
//   - Coord: an immutable (row, column) pair with translation, 4/8
//     adjacency, Manhattan distance, deterministic ordering and a
//     reproducible 32-bit hash.
//   - Coord3: the same shape with a height axis, Euclidean distance and
//     6/26 adjacency.
//   - Set: a sparse set of Coord values.
//   - Pairs: every ordered pair of distinct positions in a slice.
//
// Conventions:
//
//   - Rows grow downwards, columns grow to the right. North is row-1.
//   - Grids parsed from text are 1-indexed: the first rune of the first
//     line is At(1, 1). See package grid.
//
// Complexity:
//
//   - Translate, Move, Manhattan, Compare, Hash: O(1).
//   - Adjacent4 / Adjacent8 / Adjacent6 / Adjacent26: O(1) (fixed size).
//   - Pairs: O(n²) time and memory.
package coord
