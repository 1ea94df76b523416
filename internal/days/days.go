// Package days holds the puzzle solvers that run on the toolkit packages.
// Each day has two parts that take the puzzle lines and return one integer.
package days

import (
	"errors"
	"fmt"
	"log"
	"slices"
)

var (
	// ErrUnknownDay indicates a day number with no registered solver.
	ErrUnknownDay = errors.New("days: no solver for day")

	// ErrBadInput indicates puzzle input a solver cannot interpret.
	ErrBadInput = errors.New("days: malformed input")
)

// Input is what a part receives.
type Input struct {
	// Lines are the puzzle input lines without terminators.
	Lines []string

	// Sample is set when Lines is the worked example from the puzzle text;
	// some days use smaller parameters for it.
	Sample bool

	// Log receives debug traces such as grid renders. May be nil.
	Log *log.Logger
}

func (in Input) logf(format string, args ...any) {
	if in.Log != nil {
		in.Log.Printf(format, args...)
	}
}

// Part solves one half of a day's puzzle.
type Part func(Input) (int64, error)

// Day pairs a day number with its two parts.
type Day struct {
	Number       int
	Part1, Part2 Part
}

var registry = []Day{
	{Number: 4, Part1: day04Part1, Part2: day04Part2},
	{Number: 5, Part1: day05Part1, Part2: day05Part2},
	{Number: 7, Part1: day07Part1, Part2: day07Part2},
	{Number: 8, Part1: day08Part1, Part2: day08Part2},
	{Number: 9, Part1: day09Part1, Part2: day09Part2},
}

// Lookup returns the solver for day n, or ErrUnknownDay.
func Lookup(n int) (Day, error) {
	i := slices.IndexFunc(registry, func(d Day) bool { return d.Number == n })
	if i < 0 {
		return Day{}, fmt.Errorf("%w %d", ErrUnknownDay, n)
	}
	return registry[i], nil
}

// Numbers returns the registered day numbers in ascending order.
func Numbers() []int {
	out := make([]int, len(registry))
	for i, d := range registry {
		out[i] = d.Number
	}
	slices.Sort(out)
	return out
}
