package grid

import (
	"golang.org/x/exp/maps"

	"github.com/katalvlaran/aoc2025/coord"
)

// Bounds is an inclusive rectangle of rows MinRow..MaxRow and columns
// MinCol..MaxCol. A Bounds with MaxRow < MinRow or MaxCol < MinCol is empty.
type Bounds struct {
	MinRow, MinCol, MaxRow, MaxCol int
}

// Box returns the rows×cols Bounds anchored at (1, 1), the shape of a parsed grid.
func Box(rows, cols int) Bounds {
	return Bounds{MinRow: 1, MinCol: 1, MaxRow: rows, MaxCol: cols}
}

// LinesBox returns the Box covering lines: one row per line and as many
// columns as the longest line has runes.
func LinesBox(lines []string) Bounds {
	cols := 0
	for _, l := range lines {
		cols = max(cols, len([]rune(l)))
	}
	return Box(len(lines), cols)
}

// Rows returns the number of rows in b, or 0 when b is empty.
func (b Bounds) Rows() int { return max(b.MaxRow-b.MinRow+1, 0) }

// Cols returns the number of columns in b, or 0 when b is empty.
func (b Bounds) Cols() int { return max(b.MaxCol-b.MinCol+1, 0) }

// Empty reports whether b covers no cells.
func (b Bounds) Empty() bool { return b.Rows() == 0 || b.Cols() == 0 }

// Contains reports whether c lies inside b.
func (b Bounds) Contains(c coord.Coord) bool {
	return c.Row >= b.MinRow && c.Row <= b.MaxRow && c.Col >= b.MinCol && c.Col <= b.MaxCol
}

// MapBounds returns the tightest Bounds enclosing the keys of m.
// ok is false when m is empty.
func MapBounds[V any](m map[coord.Coord]V) (b Bounds, ok bool) {
	return boundsOf(maps.Keys(m))
}

// SetBounds returns the tightest Bounds enclosing s.
// ok is false when s is empty.
func SetBounds(s coord.Set) (b Bounds, ok bool) {
	return boundsOf(maps.Keys(s))
}

func boundsOf(keys []coord.Coord) (Bounds, bool) {
	if len(keys) == 0 {
		return Bounds{}, false
	}
	b := Bounds{MinRow: keys[0].Row, MaxRow: keys[0].Row, MinCol: keys[0].Col, MaxCol: keys[0].Col}
	for _, c := range keys[1:] {
		b.MinRow = min(b.MinRow, c.Row)
		b.MaxRow = max(b.MaxRow, c.Row)
		b.MinCol = min(b.MinCol, c.Col)
		b.MaxCol = max(b.MaxCol, c.Col)
	}
	return b, true
}
