package grid

import (
	"strings"

	"github.com/katalvlaran/aoc2025/coord"
)

// PrintSet renders b with marker at every coordinate of set and the fill
// rune (default '.') everywhere else.
func PrintSet(b Bounds, set coord.Set, marker rune, opts ...Option) string {
	return render(b, buildOptions(opts), func(c coord.Coord) (rune, bool) {
		if set.Has(c) {
			return marker, true
		}
		return 0, false
	})
}

// PrintSets overlays two sets. Where they overlap, the first set wins.
func PrintSets(b Bounds, first coord.Set, firstMarker rune, second coord.Set, secondMarker rune, opts ...Option) string {
	return render(b, buildOptions(opts), func(c coord.Coord) (rune, bool) {
		switch {
		case first.Has(c):
			return firstMarker, true
		case second.Has(c):
			return secondMarker, true
		}
		return 0, false
	})
}

// PrintMap renders b, converting each present value with toRune.
func PrintMap[V any](b Bounds, m map[coord.Coord]V, toRune func(V) rune, opts ...Option) string {
	return render(b, buildOptions(opts), func(c coord.Coord) (rune, bool) {
		v, ok := m[c]
		if !ok {
			return 0, false
		}
		return toRune(v), true
	})
}

// PrintChars renders a rune map such as the one returned by MapChars.
func PrintChars(b Bounds, m map[coord.Coord]rune, opts ...Option) string {
	return PrintMap(b, m, func(r rune) rune { return r }, opts...)
}

// PrintDigits renders a digit map such as the one returned by MapDigits.
// Values outside 0..9 print as '?'.
func PrintDigits(b Bounds, m map[coord.Coord]int, opts ...Option) string {
	return PrintMap(b, m, digitRune, opts...)
}

func digitRune(v int) rune {
	if v < 0 || v > 9 {
		return '?'
	}
	return rune('0' + v)
}

// render walks b in row-major order. cell reports the rune for a coordinate,
// or false to use the fill rune.
func render(b Bounds, o Options, cell func(coord.Coord) (rune, bool)) string {
	if b.Empty() {
		return ""
	}
	var sb strings.Builder
	sb.Grow(b.Rows() * (b.Cols() + 1))
	for r := b.MinRow; r <= b.MaxRow; r++ {
		for c := b.MinCol; c <= b.MaxCol; c++ {
			ch, ok := cell(coord.At(r, c))
			if !ok {
				ch = o.Fill
			}
			sb.WriteRune(ch)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
