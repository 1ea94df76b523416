package movable_test

import (
	"testing"

	"github.com/katalvlaran/aoc2025/coord"
	"github.com/katalvlaran/aoc2025/grid"
	"github.com/katalvlaran/aoc2025/movable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCanMove_Chain is the movable-chain scenario: A B C in a row, C immovable.
func TestCanMove_Chain(t *testing.T) {
	a := movable.New(coord.At(1, 1), 'A')
	b := movable.New(coord.At(1, 2), 'B')
	c := movable.NewImmovable(coord.At(1, 3), 'C')
	m := movable.PositionMap{a.Position(): a, b.Position(): b, c.Position(): c}

	ok, err := a.CanMove(coord.East, m)
	require.NoError(t, err)
	assert.False(t, ok, "C blocks the chain")

	delete(m, c.Position())
	ok, err = a.CanMove(coord.East, m)
	require.NoError(t, err)
	assert.True(t, ok, "empty space beyond B")

	assert.Equal(t, coord.At(1, 1), a.Position(), "CanMove does not mutate")
	assert.Equal(t, coord.At(1, 2), b.Position())
	assert.Len(t, m, 2)
}

func TestCanMove_Basics(t *testing.T) {
	wall := movable.NewImmovable(coord.At(2, 2), '#')
	box := movable.New(coord.At(2, 3), 'O')
	m := movable.PositionMap{wall.Position(): wall, box.Position(): box}

	ok, err := wall.CanMove(coord.North, m)
	require.NoError(t, err)
	assert.False(t, ok, "immovable never moves")

	ok, err = box.CanMove(coord.West, m)
	require.NoError(t, err)
	assert.False(t, ok, "wall directly ahead")

	for _, d := range []coord.Direction{coord.North, coord.East, coord.South, coord.NorthEast} {
		ok, err = box.CanMove(d, m)
		require.NoError(t, err)
		assert.True(t, ok, d.String())
	}

	ok, err = box.CanMove(coord.West, movable.PositionMap{})
	require.NoError(t, err)
	assert.True(t, ok, "empty map")
}

// TestCanMove_Cycle builds a map whose key disagrees with the object's
// position so the chain walk loops.
func TestCanMove_Cycle(t *testing.T) {
	a := movable.New(coord.At(1, 1), 'A')
	m := movable.PositionMap{coord.At(1, 2): a}

	_, err := a.CanMove(coord.East, m)
	assert.ErrorIs(t, err, movable.ErrCycleDetected)

	moved, err := a.Push(coord.East, m)
	assert.ErrorIs(t, err, movable.ErrCycleDetected)
	assert.False(t, moved)
	assert.Equal(t, coord.At(1, 1), a.Position())
}

func TestMove(t *testing.T) {
	o := movable.New(coord.At(3, 3), 'O')
	o.Move(coord.SouthWest)
	assert.Equal(t, coord.At(4, 2), o.Position())

	w := movable.NewImmovable(coord.At(3, 3), '#')
	w.Move(coord.North)
	assert.Equal(t, coord.At(3, 3), w.Position())
	assert.True(t, w.Immovable())
	assert.False(t, o.Immovable())

	o.SetPosition(coord.At(0, 0))
	o.SetGlyph('[')
	assert.Equal(t, coord.At(0, 0), o.Position())
	assert.Equal(t, '[', o.Glyph())
	assert.Equal(t, "[(0, 0)", o.String())
}

// TestPush_Warehouse pushes a row of boxes with a robot that is not part of
// the map, then renders the result.
func TestPush_Warehouse(t *testing.T) {
	lines := []string{
		"#######",
		"#..OO.#",
		"#######",
	}
	m := movable.FromChars(grid.MapChars(lines), func(r rune) bool { return r == '#' })
	robot := movable.New(coord.At(2, 3), '@')

	moved, err := robot.Push(coord.East, m)
	require.NoError(t, err)
	require.True(t, moved)
	assert.Equal(t, coord.At(2, 4), robot.Position())
	assert.Equal(t, "#######\n#...OO#\n#######\n", grid.PrintChars(grid.LinesBox(lines), m.Chars()))

	moved, err = robot.Push(coord.East, m)
	require.NoError(t, err)
	assert.False(t, moved, "boxes against the wall")
	assert.Equal(t, coord.At(2, 4), robot.Position())

	m[robot.Position()] = robot
	moved, err = robot.Push(coord.West, m)
	require.NoError(t, err)
	require.True(t, moved)
	assert.Equal(t, "#######\n#.@.OO#\n#######\n", grid.PrintChars(grid.LinesBox(lines), m.Chars()))
	assert.Same(t, robot, m[coord.At(2, 3)])
	assert.Len(t, m, 16+2+1, "walls, boxes and the robot")
}
