package grid_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2025/grid"
)

// ExamplePrintSets parses two landmarks from a grid and overlays them.
func ExamplePrintSets() {
	lines := []string{
		"..S..",
		".....",
		"..^..",
		".^.^.",
	}
	start := grid.FindSet(lines, 'S')
	splitters := grid.FindSet(lines, '^')
	fmt.Print(grid.PrintSets(grid.LinesBox(lines), start, 'S', splitters, '^'))
	fmt.Println(len(grid.Regions(splitters, grid.Conn8)), "splitter region(s)")

	// Output:
	// ..S..
	// .....
	// ..^..
	// .^.^.
	// 1 splitter region(s)
}
