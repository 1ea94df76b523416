package coord

import (
	"cmp"
	"fmt"
	"math"
)

// Coord3 is an immutable (row, column, height) position in 3-D space.
type Coord3 struct {
	Row, Col, Height int
}

// At3 returns the Coord3 at row, col, height.
func At3(row, col, height int) Coord3 {
	return Coord3{Row: row, Col: col, Height: height}
}

// Translate returns c shifted componentwise by by.
func (c Coord3) Translate(by Coord3) Coord3 {
	return Coord3{Row: c.Row + by.Row, Col: c.Col + by.Col, Height: c.Height + by.Height}
}

// Manhattan returns the sum of the absolute per-axis differences.
func (c Coord3) Manhattan(o Coord3) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col) + abs(c.Height-o.Height)
}

// Distance returns the Euclidean distance between c and o.
// The distance from a coordinate to itself is exactly 0.
func (c Coord3) Distance(o Coord3) float64 {
	if c == o {
		return 0
	}
	dr := float64(c.Row - o.Row)
	dc := float64(c.Col - o.Col)
	dh := float64(c.Height - o.Height)
	return math.Sqrt(dr*dr + dc*dc + dh*dh)
}

// Adjacent26 returns every neighbour whose axes each differ by at most one.
func (c Coord3) Adjacent26() map[Coord3]struct{} {
	out := make(map[Coord3]struct{}, 26)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			for dh := -1; dh <= 1; dh++ {
				if dr == 0 && dc == 0 && dh == 0 {
					continue
				}
				out[c.Translate(Coord3{dr, dc, dh})] = struct{}{}
			}
		}
	}
	return out
}

// Adjacent6 returns the neighbours that differ from c by ±1 on exactly one axis.
func (c Coord3) Adjacent6() map[Coord3]struct{} {
	out := make(map[Coord3]struct{}, 6)
	for _, delta := range []Coord3{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	} {
		out[c.Translate(delta)] = struct{}{}
	}
	return out
}

// Compare orders coordinates by row, then column, then height.
func (c Coord3) Compare(o Coord3) int {
	if r := cmp.Compare(c.Row, o.Row); r != 0 {
		return r
	}
	if r := cmp.Compare(c.Col, o.Col); r != 0 {
		return r
	}
	return cmp.Compare(c.Height, o.Height)
}

// Less reports whether c sorts before o.
func (c Coord3) Less(o Coord3) bool { return c.Compare(o) < 0 }

// Hash returns a 32-bit hash of c. Unlike Coord.Hash the formula is not
// part of the contract.
func (c Coord3) Hash() int32 {
	const prime int32 = 31
	h := int32(1)
	for _, v := range [...]int{c.Col, c.Height, c.Row} {
		h = prime*h + int32(v)
	}
	return h
}

// String formats c as "(row, col, height)".
func (c Coord3) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.Row, c.Col, c.Height)
}
