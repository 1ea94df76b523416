// SPDX-License-Identifier: MIT

package numrange

import (
	"cmp"
	"slices"
)

// Consolidate merges overlapping ranges until no two overlap and returns
// the result sorted by Min. The input slice is not modified.
//
// Steps:
//  1. Queue every input range.
//  2. Pop a range and collect every queued range it overlaps.
//  3. If there are none, the popped range is final.
//     Otherwise remove the overlapping ranges and requeue their unions
//     with the popped one.
//  4. Repeat until the queue is empty.
//
// Each iteration either finalises a range or shrinks the queue by one, so
// the loop terminates.
//
// Complexity: O(n²) time, O(n) memory.
func Consolidate[T Number](ranges []Range[T]) []Range[T] {
	queue := slices.Clone(ranges)
	var final []Range[T]

	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]

		rest := queue[:0:0]
		var merged []Range[T]
		for _, o := range queue {
			if u, err := Union(r, o); err == nil {
				merged = append(merged, u)
			} else {
				rest = append(rest, o)
			}
		}
		if len(merged) == 0 {
			final = append(final, r)
			continue
		}
		queue = append(rest, merged...)
	}

	slices.SortFunc(final, func(a, b Range[T]) int {
		return cmp.Compare(a.min, b.min)
	})
	return final
}

// TotalSize sums Size over ranges. Callers wanting the number of distinct
// points covered should Consolidate first.
func TotalSize[T Number](ranges []Range[T]) float64 {
	total := 0.0
	for _, r := range ranges {
		total += r.Size()
	}
	return total
}
