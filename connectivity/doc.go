// SPDX-License-Identifier: MIT

// Package connectivity tracks which labelled elements have been connected to
// each other, such as junction boxes wired into circuits.
//
// Every Element points at a Group holding all members of its component.
// Initially the group holds only the element itself. After a.Connect(b),
// every prior member of either group points at one shared *Group, so
// a.Group() == b.Group() by pointer identity and Size is visible from every
// member in O(1).
//
// This is disjoint-set union without path compression: Connect absorbs the
// smaller group into the larger and repoints each absorbed member, so the
// total repointing work over any sequence of connects is O(n log n).
//
// Links sorts every pair of elements by a caller-supplied weight, the
// edge-sort half of Kruskal's algorithm; connecting links in order grows
// minimum-spanning groups.
//
// Not safe for concurrent use.
package connectivity
