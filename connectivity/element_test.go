// SPDX-License-Identifier: MIT
package connectivity_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/aoc2025/connectivity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Singleton(t *testing.T) {
	e := connectivity.New("a")
	assert.Equal(t, "a", e.Label())
	require.NotNil(t, e.Group())
	assert.Equal(t, 1, e.Group().Size())
	assert.True(t, e.Group().Has(e))
	assert.True(t, e.ConnectedTo(e))
	assert.Equal(t, []string{"a"}, e.Group().Labels())
}

// TestConnect_Chain connects two pairs and then bridges them.
func TestConnect_Chain(t *testing.T) {
	p1, p2, p3, p4 := connectivity.New(1), connectivity.New(2), connectivity.New(3), connectivity.New(4)

	assert.True(t, p1.Connect(p2))
	assert.True(t, p3.Connect(p4))
	assert.False(t, p1.ConnectedTo(p3))
	assert.Equal(t, 2, p1.Group().Size())
	assert.Equal(t, 2, p4.Group().Size())

	assert.True(t, p2.Connect(p3))
	assert.Equal(t, 4, p1.Group().Size())
	assert.Same(t, p1.Group(), p4.Group())
	for _, e := range []*connectivity.Element[int]{p1, p2, p3, p4} {
		assert.Same(t, p1.Group(), e.Group())
		assert.True(t, p1.Group().Has(e))
	}
	assert.ElementsMatch(t, []int{1, 2, 3, 4}, p3.Group().Labels())
}

func TestConnect_SameGroupNoop(t *testing.T) {
	a, b := connectivity.New('a'), connectivity.New('b')
	require.True(t, a.Connect(b))
	g := a.Group()

	assert.False(t, b.Connect(a))
	assert.False(t, a.Connect(a))
	assert.Same(t, g, a.Group())
	assert.Equal(t, 2, g.Size())
}

// TestConnect_LargerSurvives checks the smaller group is absorbed and the
// surviving group keeps its join order.
func TestConnect_LargerSurvives(t *testing.T) {
	a, b, c := connectivity.New("a"), connectivity.New("b"), connectivity.New("c")
	a.Connect(b)
	big := a.Group()

	assert.True(t, c.Connect(a))
	assert.Same(t, big, c.Group())
	assert.Equal(t, []string{"a", "b", "c"}, big.Labels())

	members := big.Members()
	require.Len(t, members, 3)
	members[0] = nil
	assert.Same(t, a, big.Members()[0], "Members returns a copy")
}

// TestConnect_Equivalence joins random pairs and checks ConnectedTo against
// a brute-force reachability closure.
func TestConnect_Equivalence(t *testing.T) {
	const n = 40
	r := rand.New(rand.NewSource(11))
	elems := make([]*connectivity.Element[int], n)
	for i := range elems {
		elems[i] = connectivity.New(i)
	}
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
		adj[i][i] = true
	}
	for k := 0; k < 30; k++ {
		i, j := r.Intn(n), r.Intn(n)
		elems[i].Connect(elems[j])
		adj[i][j], adj[j][i] = true, true
	}
	// Floyd-Warshall closure.
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if adj[i][k] && adj[k][j] {
					adj[i][j] = true
				}
			}
		}
	}

	total := 0
	for _, g := range connectivity.Groups(elems) {
		total += g.Size()
	}
	assert.Equal(t, n, total, "groups partition the elements")

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, adj[i][j], elems[i].ConnectedTo(elems[j]), "%d %d", i, j)
			assert.Equal(t, elems[i].ConnectedTo(elems[j]), elems[j].ConnectedTo(elems[i]))
		}
		assert.True(t, elems[i].Group().Has(elems[i]))
	}
}

func TestGroups_Order(t *testing.T) {
	e := make([]*connectivity.Element[string], 6)
	for i, l := range []string{"a", "b", "c", "d", "e", "f"} {
		e[i] = connectivity.New(l)
	}
	e[1].Connect(e[2])
	e[3].Connect(e[4])
	e[4].Connect(e[5])

	groups := connectivity.Groups(e)
	require.Len(t, groups, 3)
	assert.Equal(t, 3, groups[0].Size())
	assert.Same(t, e[3].Group(), groups[0])
	assert.Same(t, e[1].Group(), groups[1], "ties keep first appearance")
	assert.Same(t, e[0].Group(), groups[2])

	assert.Empty(t, connectivity.Groups[string](nil))
}
