package days

import (
	"github.com/katalvlaran/aoc2025/coord"
	"github.com/katalvlaran/aoc2025/grid"
	"github.com/katalvlaran/aoc2025/numrange"
)

// span is the inclusive row and column extent of two tiles.
type span struct {
	rows, cols numrange.Range[int]
}

func spanOf(a, b coord.Coord) span {
	return span{
		rows: numrange.MustNew(min(a.Row, b.Row), max(a.Row, b.Row)),
		cols: numrange.MustNew(min(a.Col, b.Col), max(a.Col, b.Col)),
	}
}

// area counts the tiles of the rectangle with corners at the span's ends.
func (s span) area() int64 {
	return int64(numrange.Count(s.rows)) * int64(numrange.Count(s.cols))
}

// cuts reports whether the polygon edge e passes through the interior of
// the rectangle s. Edges along the rectangle's border do not cut it.
func (s span) cuts(e span) bool {
	return strictlyOverlap(e.rows, s.rows) && strictlyOverlap(e.cols, s.cols)
}

func strictlyOverlap(a, b numrange.Range[int]) bool {
	return a.Min() < b.Max() && a.Max() > b.Min()
}

// day09Part1 finds the largest rectangle with red tiles at two opposite
// corners.
func day09Part1(in Input) (int64, error) {
	red, err := grid.ParseCoordinates(in.Lines)
	if err != nil {
		return 0, err
	}
	if in.Sample {
		if b, ok := grid.SetBounds(coord.NewSet(red...)); ok {
			in.logf("red tiles:\n%s", grid.PrintSet(b, coord.NewSet(red...), '#'))
		}
	}
	var best int64
	for p := range coord.Pairs(red) {
		best = max(best, spanOf(p.First, p.Second).area())
	}
	return best, nil
}

// day09Part2 is part 1 restricted to rectangles inside the loop of red and
// green tiles, where consecutive red tiles (wrapping) are joined by
// straight edges.
func day09Part2(in Input) (int64, error) {
	red, err := grid.ParseCoordinates(in.Lines)
	if err != nil {
		return 0, err
	}
	edges := make([]span, len(red))
	for i, c := range red {
		edges[i] = spanOf(c, red[(i+1)%len(red)])
	}

	var best int64
	for p := range coord.Pairs(red) {
		rect := spanOf(p.First, p.Second)
		if a := rect.area(); a > best && !cutByAny(rect, edges) {
			best = a
		}
	}
	in.logf("%d red tiles, %d edges", len(red), len(edges))
	return best, nil
}

func cutByAny(rect span, edges []span) bool {
	for _, e := range edges {
		if rect.cuts(e) {
			return true
		}
	}
	return false
}
