package days

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2025/numrange"
)

// inventory is the parsed ingredient database: fresh ID ranges, a blank
// line, then the available ingredient IDs.
type inventory struct {
	fresh []numrange.Range[int64]
	ids   []int64
}

func parseInventory(lines []string) (inventory, error) {
	var inv inventory
	ranges := true
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			ranges = false
			continue
		}
		if !ranges {
			id, err := strconv.ParseInt(line, 10, 64)
			if err != nil {
				return inventory{}, fmt.Errorf("%w: line %d: %v", ErrBadInput, i+1, err)
			}
			inv.ids = append(inv.ids, id)
			continue
		}
		lo, hi, ok := strings.Cut(line, "-")
		if !ok {
			return inventory{}, fmt.Errorf("%w: line %d: %q is not a range", ErrBadInput, i+1, line)
		}
		a, err := strconv.ParseInt(lo, 10, 64)
		if err != nil {
			return inventory{}, fmt.Errorf("%w: line %d: %v", ErrBadInput, i+1, err)
		}
		b, err := strconv.ParseInt(hi, 10, 64)
		if err != nil {
			return inventory{}, fmt.Errorf("%w: line %d: %v", ErrBadInput, i+1, err)
		}
		r, err := numrange.New(a, b)
		if err != nil {
			return inventory{}, fmt.Errorf("%w: line %d: %w", ErrBadInput, i+1, err)
		}
		inv.fresh = append(inv.fresh, r)
	}
	return inv, nil
}

// day05Part1 counts available IDs that fall in some fresh range.
func day05Part1(in Input) (int64, error) {
	inv, err := parseInventory(in.Lines)
	if err != nil {
		return 0, err
	}
	fresh := numrange.Consolidate(inv.fresh)
	in.logf("%d ranges consolidate to %v", len(inv.fresh), fresh)

	var n int64
	for _, id := range inv.ids {
		for _, r := range fresh {
			if r.Contains(id) {
				n++
				break
			}
		}
	}
	return n, nil
}

// day05Part2 counts every ID any fresh range covers.
func day05Part2(in Input) (int64, error) {
	inv, err := parseInventory(in.Lines)
	if err != nil {
		return 0, err
	}
	var n uint64
	for _, r := range numrange.Consolidate(inv.fresh) {
		n += numrange.Count(r)
	}
	return int64(n), nil
}
