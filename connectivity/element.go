// SPDX-License-Identifier: MIT

package connectivity

import (
	"cmp"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Element is a labelled node that belongs to exactly one Group.
type Element[T comparable] struct {
	label T
	group *Group[T]
}

// Group is the set of elements transitively connected to each other.
// Members are kept in the order they joined.
type Group[T comparable] struct {
	members []*Element[T]
	index   mapset.Set[*Element[T]]
}

// New returns an element labelled label, alone in its own group.
func New[T comparable](label T) *Element[T] {
	e := &Element[T]{label: label}
	e.group = &Group[T]{
		members: []*Element[T]{e},
		index:   mapset.Of(e),
	}
	return e
}

// Label returns the element's label.
func (e *Element[T]) Label() T { return e.label }

// Group returns the group e currently belongs to. Every member of the same
// component returns the same pointer.
func (e *Element[T]) Group() *Group[T] { return e.group }

// ConnectedTo reports whether e and other are in the same group.
func (e *Element[T]) ConnectedTo(other *Element[T]) bool {
	return e.group == other.group
}

// Connect merges the groups of e and other. It reports whether a merge
// happened; connecting two members of the same group is a no-op.
//
// The smaller group is absorbed into the larger: its members are appended
// to the survivor and repointed at it.
func (e *Element[T]) Connect(other *Element[T]) bool {
	into, from := e.group, other.group
	if into == from {
		return false
	}
	if len(from.members) > len(into.members) {
		into, from = from, into
	}
	for _, m := range from.members {
		into.members = append(into.members, m)
		into.index.Put(m)
		m.group = into
	}
	from.members = nil
	from.index = mapset.Set[*Element[T]]{}
	return true
}

// Size returns the number of members.
func (g *Group[T]) Size() int { return len(g.members) }

// Has reports whether e is a member of g.
func (g *Group[T]) Has(e *Element[T]) bool {
	return g.index.Has(e)
}

// Members returns the members of g in the order they joined.
// The slice is a copy.
func (g *Group[T]) Members() []*Element[T] {
	return slices.Clone(g.members)
}

// Labels returns the labels of the members in the order they joined.
func (g *Group[T]) Labels() []T {
	out := make([]T, len(g.members))
	for i, m := range g.members {
		out[i] = m.label
	}
	return out
}

// Groups returns the distinct groups of elems, largest first. Groups of
// equal size keep the order in which their first member appears in elems.
func Groups[T comparable](elems []*Element[T]) []*Group[T] {
	seen := make(map[*Group[T]]struct{})
	var out []*Group[T]
	for _, e := range elems {
		if _, ok := seen[e.group]; ok {
			continue
		}
		seen[e.group] = struct{}{}
		out = append(out, e.group)
	}
	slices.SortStableFunc(out, func(a, b *Group[T]) int {
		return cmp.Compare(b.Size(), a.Size())
	})
	return out
}
