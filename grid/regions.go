package grid

import (
	"slices"

	"github.com/katalvlaran/aoc2025/coord"
)

// Regions finds all contiguous groups of coordinates in set according to
// conn connectivity.
//
// Each region is sorted row-major, and regions are ordered by their first
// (smallest) coordinate, so the result is deterministic regardless of map
// iteration order.
//
// Time:   O(n·d), where d = 4 or 8.
// Memory: O(n) for visited flags and output.
func Regions(set coord.Set, conn Connectivity) [][]coord.Coord {
	seen := make(coord.Set, set.Len())
	var regions [][]coord.Coord

	// Seeding from the sorted members makes region order follow the first coordinate.
	for _, start := range set.Sorted() {
		if seen.Has(start) {
			continue
		}
		// BFS to collect the region
		queue := []coord.Coord{start}
		seen.Add(start)
		for qi := 0; qi < len(queue); qi++ {
			for n := range conn.neighbours(queue[qi]) {
				if set.Has(n) && !seen.Has(n) {
					seen.Add(n)
					queue = append(queue, n)
				}
			}
		}
		slices.SortFunc(queue, coord.Coord.Compare)
		regions = append(regions, queue)
	}
	return regions
}
