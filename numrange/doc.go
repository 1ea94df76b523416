// SPDX-License-Identifier: MIT

// Package numrange implements inclusive numeric ranges [min, max] with
// overlap tests, union and consolidation.
//
// Union is intentionally partial: it fails with ErrNonOverlapping for
// disjoint operands, so callers must prove overlap first. Consolidate builds
// on it to reduce any collection of ranges to the minimal set of disjoint
// ranges covering the same points.
//
// Errors:
//
//   - ErrInvalidRange:   New called with min > max.
//   - ErrNonOverlapping: Union called on disjoint ranges.
package numrange
