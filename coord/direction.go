package coord

import "fmt"

// Direction is one of the eight compass directions.
// The declaration order is the clockwise order starting from East, and
// rotation arithmetic is performed modulo 8 on that order.
type Direction int

const (
	East Direction = iota
	SouthEast
	South
	SouthWest
	West
	NorthWest
	North
	NorthEast
)

// directionCount is the size of the compass.
const directionCount = 8

// leftDegreesOffset is the fixed index offset applied by RotateLeftDegrees.
const leftDegreesOffset = 10

var (
	directionSymbols = [directionCount]rune{'>', '↘', 'v', '↙', '<', '↖', '^', '↗'}
	directionLetters = [directionCount]rune{'R', 'C', 'D', 'Z', 'L', 'Q', 'U', 'E'}
	directionNames   = [directionCount]string{
		"East", "SouthEast", "South", "SouthWest", "West", "NorthWest", "North", "NorthEast",
	}
	// directionDeltas holds the unit translation as (Δrow, Δcol).
	directionDeltas = [directionCount]Coord{
		{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
	}
	directionOpposites = [directionCount]Direction{
		East:      West,
		SouthEast: NorthWest,
		South:     North,
		SouthWest: NorthEast,
		West:      East,
		NorthWest: SouthEast,
		North:     South,
		NorthEast: SouthWest,
	}
)

var (
	symbolIndex = make(map[rune]Direction, directionCount)
	letterIndex = make(map[rune]Direction, directionCount)
)

func init() {
	for d := East; d <= NorthEast; d++ {
		symbolIndex[directionSymbols[d]] = d
		letterIndex[directionLetters[d]] = d
	}
}

// All returns the eight directions in clockwise order starting from East.
func All() []Direction {
	return []Direction{East, SouthEast, South, SouthWest, West, NorthWest, North, NorthEast}
}

// Orthogonals returns the four axis-aligned directions in clockwise order.
// A fresh slice is returned on each call, so callers may modify it.
func Orthogonals() []Direction {
	return []Direction{East, South, West, North}
}

// FromSymbol looks up the direction displayed with glyph r (one of > ↘ v ↙ < ↖ ^ ↗).
// ok is false when r is not a direction glyph.
func FromSymbol(r rune) (d Direction, ok bool) {
	d, ok = symbolIndex[r]
	return d, ok
}

// FromLetter looks up the direction encoded by letter r (one of R C D Z L Q U E).
// ok is false when r is not a direction letter.
func FromLetter(r rune) (d Direction, ok bool) {
	d, ok = letterIndex[r]
	return d, ok
}

// Valid reports whether d is one of the eight declared directions.
func (d Direction) Valid() bool {
	return d >= East && d <= NorthEast
}

// Symbol returns the display glyph of d.
func (d Direction) Symbol() rune { return directionSymbols[d.index()] }

// Letter returns the single-letter code of d.
func (d Direction) Letter() rune { return directionLetters[d.index()] }

// Translation returns the unit vector of d as a (Δrow, Δcol) Coord.
func (d Direction) Translation() Coord { return directionDeltas[d.index()] }

// IsOrthogonal reports whether d is one of North, South, East or West.
func (d Direction) IsOrthogonal() bool { return d.index()%2 == 0 }

// Opposite returns the direction 180° away from d.
func (d Direction) Opposite() Direction { return directionOpposites[d.index()] }

// RotateRight returns the next direction clockwise (45°).
func (d Direction) RotateRight() Direction { return d.step(1) }

// RotateLeft returns the next direction counter-clockwise (45°).
func (d Direction) RotateLeft() Direction { return d.step(directionCount - 1) }

// RotateRightDegrees rotates d clockwise by degrees.
// The number of 45° steps is degrees/360*8 truncated toward zero, so 44°
// does not rotate at all, 90° rotates two steps and 360° is a no-op.
// Negative values rotate counter-clockwise: RotateRightDegrees(-45) equals
// RotateLeft().
func (d Direction) RotateRightDegrees(degrees int) Direction {
	return d.step(degreeSteps(degrees))
}

// RotateLeftDegrees returns the direction at index (i + 10 - steps) mod 8,
// where i is the index of d and steps uses the truncation rule of
// RotateRightDegrees.
//
// The offset is 10, not 8, so this is not the mirror of RotateRightDegrees:
// RotateLeftDegrees(90) returns d itself and RotateLeftDegrees(0) is two
// steps clockwise of d. Use RotateLeft or RotateRightDegrees(-degrees) for a
// plain counter-clockwise turn.
func (d Direction) RotateLeftDegrees(degrees int) Direction {
	return d.step(leftDegreesOffset - degreeSteps(degrees))
}

// String returns the name of the direction, e.g. "NorthEast".
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// degreeSteps converts degrees into whole 45° steps, truncated toward zero.
func degreeSteps(degrees int) int {
	return int(float64(degrees) / 360 * directionCount)
}

// step returns the direction n positions clockwise of d; n may be negative.
func (d Direction) step(n int) Direction {
	return Direction(mod(d.index()+n, directionCount))
}

// index panics with a readable message for undeclared values instead of an
// opaque index-out-of-range.
func (d Direction) index() int {
	if !d.Valid() {
		panic(fmt.Sprintf("coord: invalid direction %d", int(d)))
	}
	return int(d)
}

// mod is the always non-negative remainder of a / m.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
