package coord_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/aoc2025/coord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCoord_TranslateRoundTrip checks that moving n and back along the
// opposite direction returns to the start.
func TestCoord_TranslateRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		c := coord.At(r.Intn(2001)-1000, r.Intn(2001)-1000)
		n := r.Intn(41) - 20
		for _, d := range coord.All() {
			assert.Equal(t, c, c.Move(d, n).Move(d.Opposite(), n), "%v %v %d", c, d, n)
		}
	}
}

func TestCoord_Translate(t *testing.T) {
	c := coord.At(3, 4)
	assert.Equal(t, coord.At(5, 3), c.Translate(coord.At(2, -1)))
	assert.Equal(t, coord.At(3, 7), c.Move(coord.East, 3))
	assert.Equal(t, coord.At(1, 2), c.Move(coord.NorthWest, 2))
	assert.Equal(t, coord.At(5, 4), c.Move(coord.North, -2), "negative distance")
	assert.Equal(t, c, c.Move(coord.SouthWest, 0))
}

func TestCoord_Manhattan(t *testing.T) {
	assert.Equal(t, 0, coord.At(2, 2).Manhattan(coord.At(2, 2)))
	assert.Equal(t, 7, coord.At(1, 1).Manhattan(coord.At(4, 5)))
	assert.Equal(t, 7, coord.At(4, 5).Manhattan(coord.At(1, 1)))
	assert.Equal(t, 12, coord.At(-3, 2).Manhattan(coord.At(3, -4)))
}

// TestCoord_Adjacency checks sizes, exclusion of the centre and the subset relation.
func TestCoord_Adjacency(t *testing.T) {
	for _, c := range []coord.Coord{coord.At(0, 0), coord.At(1, 1), coord.At(-5, 9)} {
		all := c.Adjacent8()
		orth := c.Adjacent4()
		require.Equal(t, 8, all.Len())
		require.Equal(t, 4, orth.Len())
		assert.False(t, all.Has(c))
		assert.False(t, orth.Has(c))
		for n := range orth {
			assert.True(t, all.Has(n), "%v must be in Adjacent8", n)
			assert.Equal(t, 1, c.Manhattan(n))
		}
		for n := range all {
			assert.LessOrEqual(t, c.Manhattan(n), 2)
		}
	}
	assert.Equal(t, []coord.Coord{
		coord.At(0, 1), coord.At(1, 0), coord.At(1, 2), coord.At(2, 1),
	}, coord.At(1, 1).Adjacent4().Sorted())
}

// TestCoord_Hash pins the public hash formula, including int32 wrap-around.
func TestCoord_Hash(t *testing.T) {
	assert.Equal(t, int32(961), coord.At(0, 0).Hash())
	assert.Equal(t, int32(31*(31+2)+1), coord.At(1, 2).Hash())
	assert.Equal(t, int32(31*(31-7)-3), coord.At(-3, -7).Hash())

	r := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		row := int32(r.Uint32())
		col := int32(r.Uint32())
		want := 31*(31+col) + row
		assert.Equal(t, want, coord.At(int(row), int(col)).Hash())
	}

	extreme := coord.At(math.MaxInt32, math.MinInt32)
	col, row := int32(math.MinInt32), int32(math.MaxInt32)
	assert.Equal(t, 31*(31+col)+row, extreme.Hash())
}

// TestCoord_Ordering verifies row-major ordering with sort.Slice.
func TestCoord_Ordering(t *testing.T) {
	cs := []coord.Coord{coord.At(2, 1), coord.At(1, 3), coord.At(1, -1), coord.At(-1, 5), coord.At(2, 0)}
	sort.Slice(cs, func(i, j int) bool { return cs[i].Less(cs[j]) })
	assert.Equal(t, []coord.Coord{
		coord.At(-1, 5), coord.At(1, -1), coord.At(1, 3), coord.At(2, 0), coord.At(2, 1),
	}, cs)

	assert.Equal(t, 0, coord.At(4, 4).Compare(coord.At(4, 4)))
	assert.Equal(t, -1, coord.At(4, 3).Compare(coord.At(4, 4)))
	assert.Equal(t, 1, coord.At(5, 0).Compare(coord.At(4, 9)))
	assert.Equal(t, "(3, -2)", coord.At(3, -2).String())
}

// TestSet_Operations covers the Set helpers used by the solvers.
func TestSet_Operations(t *testing.T) {
	s := coord.NewSet(coord.At(1, 1), coord.At(1, 2))
	s.Add(coord.At(2, 2))
	s.Add(coord.At(1, 1))
	assert.Equal(t, 3, s.Len())

	clone := s.Clone()
	s.Remove(coord.At(1, 2))
	s.Remove(coord.At(9, 9))
	assert.False(t, s.Has(coord.At(1, 2)))
	assert.True(t, clone.Has(coord.At(1, 2)), "clone is independent")

	inter := clone.Intersection(coord.At(1, 1).Adjacent8())
	assert.Equal(t, []coord.Coord{coord.At(1, 2), coord.At(2, 2)}, inter.Sorted())

	var empty coord.Set
	assert.False(t, empty.Has(coord.At(0, 0)))
	assert.Empty(t, empty.Sorted())
	assert.Equal(t, 0, empty.Intersection(s).Len())
}
