package days

import (
	"fmt"

	"github.com/katalvlaran/aoc2025/coord"
	"github.com/katalvlaran/aoc2025/grid"
)

// manifold is a tachyon manifold: a beam enters at start and travels south;
// a splitter directly below a beam stops it and emits one beam on each
// side of the splitter.
type manifold struct {
	box       grid.Bounds
	start     coord.Coord
	splitters coord.Set
}

func parseManifold(lines []string) (manifold, error) {
	starts := grid.FindSet(lines, 'S')
	if starts.Len() != 1 {
		return manifold{}, fmt.Errorf("%w: want one beam entry 'S', found %d", ErrBadInput, starts.Len())
	}
	return manifold{
		box:       grid.LinesBox(lines),
		start:     starts.Sorted()[0],
		splitters: grid.FindSet(lines, '^'),
	}, nil
}

// beamTrace is the outcome of following every beam out of the manifold.
type beamTrace struct {
	hit       coord.Set // splitters that split at least one beam
	trail     coord.Set // every cell a beam passed through
	timelines int64     // beam paths, counting each split as a fork
}

// trace advances all beams one row at a time. Beams that reach the same
// cell merge; their path counts add up.
func (m manifold) trace() beamTrace {
	t := beamTrace{hit: coord.NewSet(), trail: coord.NewSet(m.start)}
	paths := map[coord.Coord]int64{m.start: 1}
	for len(paths) > 0 {
		next := make(map[coord.Coord]int64, len(paths)*2)
		emit := func(c coord.Coord, n int64) {
			if !m.box.Contains(c) {
				t.timelines += n
				return
			}
			next[c] += n
			t.trail.Add(c)
		}
		for beam, n := range paths {
			below := beam.Move(coord.South, 1)
			if !m.splitters.Has(below) {
				emit(below, n)
				continue
			}
			t.hit.Add(below)
			emit(below.Move(coord.West, 1), n)
			emit(below.Move(coord.East, 1), n)
		}
		paths = next
	}
	return t
}

// day07Part1 counts the splitters that split a beam.
func day07Part1(in Input) (int64, error) {
	m, err := parseManifold(in.Lines)
	if err != nil {
		return 0, err
	}
	t := m.trace()
	in.logf("beams:\n%s", grid.PrintSets(m.box, m.splitters, '^', t.trail, '|'))
	return int64(t.hit.Len()), nil
}

// day07Part2 counts the distinct timelines a single particle can take.
func day07Part2(in Input) (int64, error) {
	m, err := parseManifold(in.Lines)
	if err != nil {
		return 0, err
	}
	t := m.trace()
	in.logf("%d of %d splitters used, %d timelines", t.hit.Len(), m.splitters.Len(), t.timelines)
	return t.timelines, nil
}
