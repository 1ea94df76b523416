package coord_test

import (
	"testing"

	"github.com/katalvlaran/aoc2025/coord"
	"github.com/stretchr/testify/assert"
)

// TestPairs_Permutations checks that both orderings of every pair are present.
func TestPairs_Permutations(t *testing.T) {
	a, b, c := coord.At(1, 1), coord.At(1, 2), coord.At(3, 4)
	pairs := coord.Pairs([]coord.Coord{a, b, c})

	assert.Len(t, pairs, 6)
	for _, p := range []coord.Pair[coord.Coord]{{a, b}, {b, a}, {a, c}, {c, a}, {b, c}, {c, b}} {
		assert.Contains(t, pairs, p)
		assert.Contains(t, pairs, p.Swap())
	}
	for p := range pairs {
		assert.NotEqual(t, p.First, p.Second)
	}
}

func TestPairs_Degenerate(t *testing.T) {
	assert.Empty(t, coord.Pairs[coord.Coord](nil))
	assert.Empty(t, coord.Pairs([]coord.Coord{coord.At(1, 1)}))

	dup := coord.Pairs([]coord.Coord{coord.At(2, 2), coord.At(2, 2)})
	assert.Equal(t, map[coord.Pair[coord.Coord]]struct{}{
		{coord.At(2, 2), coord.At(2, 2)}: {},
	}, dup, "repeated positions pair with each other once after dedup")
}

func TestPairs_Generic(t *testing.T) {
	pairs := coord.Pairs([]coord.Coord3{coord.At3(0, 0, 0), coord.At3(1, 1, 1)})
	assert.Len(t, pairs, 2)
}
