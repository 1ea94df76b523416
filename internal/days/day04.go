package days

import (
	"github.com/katalvlaran/aoc2025/coord"
	"github.com/katalvlaran/aoc2025/grid"
)

// A paper roll can be reached by a forklift when fewer than this many of
// its eight neighbours are rolls.
const crowdedRolls = 4

func day04Part1(in Input) (int64, error) {
	rolls := grid.FindSet(in.Lines, '@')
	reachable := reachableRolls(rolls)
	in.logf("reachable rolls:\n%s", grid.PrintSets(grid.LinesBox(in.Lines), reachable, 'x', rolls, '@'))
	return int64(reachable.Len()), nil
}

// day04Part2 removes reachable rolls round by round until none are left
// and counts every roll removed.
func day04Part2(in Input) (int64, error) {
	rolls := grid.FindSet(in.Lines, '@')
	var removed int64
	for round := 1; ; round++ {
		reachable := reachableRolls(rolls)
		if reachable.Len() == 0 {
			break
		}
		for c := range reachable {
			rolls.Remove(c)
		}
		removed += int64(reachable.Len())
		in.logf("round %d: removed %d", round, reachable.Len())
	}
	in.logf("remaining rolls:\n%s", grid.PrintSet(grid.LinesBox(in.Lines), rolls, '@'))
	return removed, nil
}

func reachableRolls(rolls coord.Set) coord.Set {
	out := coord.NewSet()
	for c := range rolls {
		if rolls.Intersection(c.Adjacent8()).Len() < crowdedRolls {
			out.Add(c)
		}
	}
	return out
}
