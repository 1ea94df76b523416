package coord

import (
	"cmp"
	"fmt"
)

// Coord is an immutable (row, column) position. The zero value is At(0, 0).
// Coord is comparable and safe to use as a map key.
type Coord struct {
	Row, Col int
}

// At returns the Coord at row, col.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Translate returns c shifted componentwise by by.
func (c Coord) Translate(by Coord) Coord {
	return Coord{Row: c.Row + by.Row, Col: c.Col + by.Col}
}

// Move returns c shifted dist units in direction d. A negative dist moves
// the opposite way, so c.Move(d, n).Move(d.Opposite(), n) == c.
func (c Coord) Move(d Direction, dist int) Coord {
	t := d.Translation()
	return Coord{Row: c.Row + t.Row*dist, Col: c.Col + t.Col*dist}
}

// Manhattan returns |Δrow| + |Δcol| between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// Adjacent8 returns the eight neighbours of c, diagonals included.
func (c Coord) Adjacent8() Set {
	s := make(Set, directionCount)
	for _, t := range directionDeltas {
		s.Add(c.Translate(t))
	}
	return s
}

// Adjacent4 returns the four orthogonal neighbours of c.
func (c Coord) Adjacent4() Set {
	s := make(Set, 4)
	for _, d := range Orthogonals() {
		s.Add(c.Move(d, 1))
	}
	return s
}

// Hash returns the reproducible 32-bit hash 31*(31+col)+row, computed with
// int32 two's-complement wrap-around after narrowing both fields to int32.
func (c Coord) Hash() int32 {
	const prime int32 = 31
	h := int32(1)
	h = prime*h + int32(c.Col)
	h = prime*h + int32(c.Row)
	return h
}

// Compare orders coordinates row first, then column.
// It returns -1, 0 or +1 like cmp.Compare.
func (c Coord) Compare(o Coord) int {
	if r := cmp.Compare(c.Row, o.Row); r != 0 {
		return r
	}
	return cmp.Compare(c.Col, o.Col)
}

// Less reports whether c sorts before o (row major).
func (c Coord) Less(o Coord) bool { return c.Compare(o) < 0 }

// String formats c as "(row, col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
