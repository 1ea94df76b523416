package coord

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Set is a sparse set of coordinates. The zero value (nil) is a valid empty
// set for reads; use NewSet or make(Set) before calling Add.
type Set map[Coord]struct{}

// NewSet returns a set holding cs.
func NewSet(cs ...Coord) Set {
	s := make(Set, len(cs))
	for _, c := range cs {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts c.
func (s Set) Add(c Coord) { s[c] = struct{}{} }

// Remove deletes c; removing an absent coordinate is a no-op.
func (s Set) Remove(c Coord) { delete(s, c) }

// Has reports whether c is present.
func (s Set) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of coordinates in s.
func (s Set) Len() int { return len(s) }

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Intersection returns the coordinates present in both s and o.
// Complexity: O(min(|s|, |o|)).
func (s Set) Intersection(o Set) Set {
	small, large := s, o
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set)
	for c := range small {
		if large.Has(c) {
			out[c] = struct{}{}
		}
	}
	return out
}

// Sorted returns the members of s in row-major order.
// Complexity: O(n log n).
func (s Set) Sorted() []Coord {
	keys := maps.Keys(s)
	slices.SortFunc(keys, Coord.Compare)
	return keys
}
