// SPDX-License-Identifier: MIT

package connectivity

import (
	"cmp"
	"slices"
)

// Link is a candidate connection between two elements with its weight.
type Link[T comparable] struct {
	A, B   *Element[T]
	Weight float64
}

// Connect connects the two ends of l and reports whether their groups merged.
func (l Link[T]) Connect() bool { return l.A.Connect(l.B) }

// Links returns one Link per unordered pair of elems (i < j), weighted by
// weight(A.Label(), B.Label()) and sorted by ascending weight.
//
// Steps:
//  1. Enumerate every pair (i, j) with i < j.
//  2. Sort by weight with a stable sort, so equal weights keep enumeration
//     order and the result is deterministic.
//
// Connecting the returned links in order, skipping those that report no
// merge, is Kruskal's algorithm.
//
// Complexity: O(n² log n) time, O(n²) memory.
func Links[T comparable](elems []*Element[T], weight func(a, b T) float64) []Link[T] {
	n := len(elems)
	links := make([]Link[T], 0, n*max(n-1, 0)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			links = append(links, Link[T]{
				A:      elems[i],
				B:      elems[j],
				Weight: weight(elems[i].label, elems[j].label),
			})
		}
	}
	slices.SortStableFunc(links, func(x, y Link[T]) int {
		return cmp.Compare(x.Weight, y.Weight)
	})
	return links
}
