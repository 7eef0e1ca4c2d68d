// Package fresh solves day 5: checking ingredient ids against ranges of
// fresh ids.
package fresh

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Range is an inclusive range of fresh ids.
type Range struct {
	Lo, Hi int
}

func (r Range) Contains(id int) bool {
	return r.Lo <= id && id <= r.Hi
}

func (r Range) Len() int {
	return r.Hi - r.Lo + 1
}

// Inventory is the parsed puzzle input. Ranges are merged, sorted and
// disjoint.
type Inventory struct {
	Ranges []Range
	IDs    []int
}

// Parse reads the ranges block, a blank line, then one id per line. lines
// must keep the blank separator.
func Parse(lines []string) (*Inventory, error) {
	var (
		inv    Inventory
		ranges []Range
		inIDs  bool
	)
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(ranges) > 0 {
				inIDs = true
			}
			continue
		}
		if !inIDs {
			lo, hi, ok := strings.Cut(line, "-")
			if !ok {
				return nil, fmt.Errorf("line %d: range %q missing '-'", i+1, line)
			}
			l, err := strconv.Atoi(lo)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			h, err := strconv.Atoi(hi)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			if h < l {
				return nil, fmt.Errorf("line %d: bad range %q", i+1, line)
			}
			ranges = append(ranges, Range{l, h})
			continue
		}
		id, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		inv.IDs = append(inv.IDs, id)
	}
	inv.Ranges = Merge(ranges)
	return &inv, nil
}

// Merge returns the union of ranges as sorted, disjoint, non-adjacent
// ranges. The input is not modified.
func Merge(ranges []Range) []Range {
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b Range) int {
		return cmp.Compare(a.Lo, b.Lo)
	})
	var out []Range
	for _, r := range sorted {
		if n := len(out); n > 0 && r.Lo <= out[n-1].Hi+1 {
			out[n-1].Hi = max(out[n-1].Hi, r.Hi)
			continue
		}
		out = append(out, r)
	}
	return out
}

// Fresh reports whether id is in one of the inventory's ranges.
func (inv *Inventory) Fresh(id int) bool {
	i, found := slices.BinarySearchFunc(inv.Ranges, id, func(r Range, target int) int {
		return cmp.Compare(r.Lo, target)
	})
	if found {
		return true
	}
	return i > 0 && inv.Ranges[i-1].Contains(id)
}

// Part1 counts the available ids that are fresh.
func Part1(inv *Inventory) int {
	n := 0
	for _, id := range inv.IDs {
		if inv.Fresh(id) {
			n++
		}
	}
	return n
}

// Part2 counts every id the ranges consider fresh.
func Part2(inv *Inventory) int {
	n := 0
	for _, r := range inv.Ranges {
		n += r.Len()
	}
	return n
}
