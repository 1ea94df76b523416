package days

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2025/connectivity"
	"github.com/katalvlaran/aoc2025/coord"
)

// Number of shortest connections made in part 1.
const (
	sampleConnections = 10
	inputConnections  = 1000
)

// parseJunctions reads one "x,y,z" junction box position per line. x maps to
// Row, y to Col and z to Height.
func parseJunctions(lines []string) ([]*connectivity.Element[coord.Coord3], error) {
	var boxes []*connectivity.Element[coord.Coord3]
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: %q is not x,y,z", ErrBadInput, i+1, line)
		}
		var v [3]int
		for j, f := range fields {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrBadInput, i+1, err)
			}
			v[j] = n
		}
		boxes = append(boxes, connectivity.New(coord.At3(v[0], v[1], v[2])))
	}
	return boxes, nil
}

// day08Part1 wires the closest pairs of junction boxes, then multiplies the
// sizes of the three largest circuits.
func day08Part1(in Input) (int64, error) {
	boxes, err := parseJunctions(in.Lines)
	if err != nil {
		return 0, err
	}
	k := inputConnections
	if in.Sample {
		k = sampleConnections
	}
	links := connectivity.Links(boxes, coord.Coord3.Distance)
	for _, l := range links[:min(k, len(links))] {
		l.Connect()
	}

	circuits := connectivity.Groups(boxes)
	if len(circuits) < 3 {
		return 0, fmt.Errorf("%w: %d circuits, need at least 3", ErrBadInput, len(circuits))
	}
	product := int64(1)
	for _, c := range circuits[:3] {
		product *= int64(c.Size())
	}
	in.logf("%d circuits after %d connections, largest %d", len(circuits), k, circuits[0].Size())
	return product, nil
}

// day08Part2 keeps wiring closest pairs until every box is in one circuit and
// multiplies the x coordinates of the last pair joined.
func day08Part2(in Input) (int64, error) {
	boxes, err := parseJunctions(in.Lines)
	if err != nil {
		return 0, err
	}
	if len(boxes) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 junction boxes", ErrBadInput)
	}
	merges := 0
	for _, l := range connectivity.Links(boxes, coord.Coord3.Distance) {
		if !l.Connect() {
			continue
		}
		merges++
		if merges == len(boxes)-1 {
			a, b := l.A.Label(), l.B.Label()
			in.logf("last link %v - %v", a, b)
			return int64(a.Row) * int64(b.Row), nil
		}
	}
	panic("unreachable: n-1 merges always join every box")
}
