package movable

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2025/coord"
)

// ErrCycleDetected indicates a push chain that loops back on itself.
var ErrCycleDetected = errors.New("movable: push chain does not terminate")

// Object is something at a position on the grid, displayed with a glyph.
// Immovable objects ignore Move and block every push.
type Object struct {
	pos       coord.Coord
	glyph     rune
	immovable bool
}

// New returns an ordinary, movable object.
func New(pos coord.Coord, glyph rune) *Object {
	return &Object{pos: pos, glyph: glyph}
}

// NewImmovable returns an object that never moves, such as a wall.
func NewImmovable(pos coord.Coord, glyph rune) *Object {
	return &Object{pos: pos, glyph: glyph, immovable: true}
}

// Position returns where o currently is.
func (o *Object) Position() coord.Coord { return o.pos }

// SetPosition places o at pos. It does not re-key any PositionMap holding o.
func (o *Object) SetPosition(pos coord.Coord) { o.pos = pos }

// Glyph returns the rune o is drawn with.
func (o *Object) Glyph() rune { return o.glyph }

// SetGlyph changes the rune o is drawn with.
func (o *Object) SetGlyph(r rune) { o.glyph = r }

// Immovable reports whether o ignores Move and blocks pushes.
func (o *Object) Immovable() bool { return o.immovable }

// Move shifts o one unit in direction d. It is a no-op for immovable objects.
func (o *Object) Move(d coord.Direction) {
	if o.immovable {
		return
	}
	o.pos = o.pos.Move(d, 1)
}

func (o *Object) String() string {
	return fmt.Sprintf("%c%v", o.glyph, o.pos)
}

// PositionMap indexes objects by the coordinate they occupy.
type PositionMap map[coord.Coord]*Object

// CanMove reports whether o could move one unit in direction d given the
// objects in m. The space in front of o must be empty, or hold a movable
// object that can itself move in d, and so on down the chain.
// An immovable o can never move. m is not modified.
//
// The chain is walked iteratively. Walking more than len(m) hops returns
// ErrCycleDetected.
func (o *Object) CanMove(d coord.Direction, m PositionMap) (bool, error) {
	chain, err := o.chain(d, m)
	if err != nil {
		return false, err
	}
	return chain != nil, nil
}

// Push moves o and every object in front of it one unit in direction d when
// CanMove allows it. Objects indexed in m are re-keyed to their new
// positions, farthest first so no two ever share a key; o itself need not be
// in m. It reports whether anything moved.
func (o *Object) Push(d coord.Direction, m PositionMap) (bool, error) {
	chain, err := o.chain(d, m)
	if err != nil || chain == nil {
		return false, err
	}
	for i := len(chain) - 1; i >= 0; i-- {
		obj := chain[i]
		indexed := m[obj.pos] == obj
		if indexed {
			delete(m, obj.pos)
		}
		obj.Move(d)
		if indexed {
			m[obj.pos] = obj
		}
	}
	return true, nil
}

// chain returns o followed by every object it would push, or nil when the
// push is blocked.
func (o *Object) chain(d coord.Direction, m PositionMap) ([]*Object, error) {
	if o.immovable {
		return nil, nil
	}
	chain := []*Object{o}
	for cur := o; ; {
		next, ok := m[cur.pos.Move(d, 1)]
		switch {
		case !ok:
			return chain, nil
		case next.immovable:
			return nil, nil
		case len(chain) > len(m):
			return nil, fmt.Errorf("%w: from %v heading %v", ErrCycleDetected, o, d)
		}
		chain = append(chain, next)
		cur = next
	}
}

// FromChars builds a PositionMap from a parsed rune map.
// Runes for which immovable reports true become immovable objects.
func FromChars(chars map[coord.Coord]rune, immovable func(rune) bool) PositionMap {
	m := make(PositionMap, len(chars))
	for c, r := range chars {
		if immovable != nil && immovable(r) {
			m[c] = NewImmovable(c, r)
		} else {
			m[c] = New(c, r)
		}
	}
	return m
}

// Chars returns the glyph at every occupied coordinate, ready for grid.PrintChars.
func (m PositionMap) Chars() map[coord.Coord]rune {
	out := make(map[coord.Coord]rune, len(m))
	for c, o := range m {
		out[c] = o.glyph
	}
	return out
}
