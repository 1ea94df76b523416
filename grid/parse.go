package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2025/coord"
)

// MapChars maps the coordinate of every non-blank rune in lines to that rune.
// The blank rune defaults to '.'; override it with WithBlank.
//
// Example:
//
//	m := MapChars([]string{"#.", ".@"})
//	// m == {(1,1): '#', (2,2): '@'}
func MapChars(lines []string, opts ...Option) map[coord.Coord]rune {
	o := buildOptions(opts)
	out := make(map[coord.Coord]rune)
	forEachRune(lines, func(c coord.Coord, r rune) {
		if r != o.Blank {
			out[c] = r
		}
	})
	return out
}

// MapDigits maps the coordinate of every ASCII digit in lines to its value 0..9.
// All other runes are ignored.
func MapDigits(lines []string) map[coord.Coord]int {
	out := make(map[coord.Coord]int)
	forEachRune(lines, func(c coord.Coord, r rune) {
		if r >= '0' && r <= '9' {
			out[c] = int(r - '0')
		}
	})
	return out
}

// FindSet returns the coordinates of every occurrence of ch in lines.
// Use DefaultMarker ('#') for the common wall/rock layouts.
func FindSet(lines []string, ch rune) coord.Set {
	out := make(coord.Set)
	forEachRune(lines, func(c coord.Coord, r rune) {
		if r == ch {
			out.Add(c)
		}
	})
	return out
}

// ParseCoordinates reads one "row,col" pair per line, in input order.
// Blank lines are skipped and surrounding spaces are ignored. A malformed
// line returns an error wrapping ErrBadCoordinate with its 1-based line number.
func ParseCoordinates(lines []string) ([]coord.Coord, error) {
	out := make([]coord.Coord, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rowText, colText, found := strings.Cut(line, ",")
		if !found {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadCoordinate, i+1, line)
		}
		row, err := strconv.Atoi(strings.TrimSpace(rowText))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: row: %v", ErrBadCoordinate, i+1, err)
		}
		col, err := strconv.Atoi(strings.TrimSpace(colText))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: col: %v", ErrBadCoordinate, i+1, err)
		}
		out = append(out, coord.At(row, col))
	}
	return out, nil
}

// forEachRune calls fn for each rune of lines with its 1-indexed coordinate.
func forEachRune(lines []string, fn func(coord.Coord, rune)) {
	for i, line := range lines {
		col := 0
		for _, r := range line {
			col++
			fn(coord.At(i+1, col), r)
		}
	}
}
