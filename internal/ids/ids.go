// Package ids solves day 2: finding product ids made of a repeated digit
// sequence inside a list of id ranges.
package ids

import (
	"fmt"
	"strconv"
	"strings"

	aoc "github.com/ertugungor/advent-of-code-25"
)

// Range is an inclusive range of ids.
type Range struct {
	Lo, Hi int
}

// ParseRanges parses comma separated "lo-hi" ranges spread over lines.
func ParseRanges(lines []string) ([]Range, error) {
	var out []Range
	for _, line := range lines {
		for _, f := range strings.Split(line, ",") {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			lo, hi, ok := strings.Cut(f, "-")
			if !ok {
				return nil, fmt.Errorf("range %q: missing '-'", f)
			}
			r, err := parseRange(lo, hi)
			if err != nil {
				return nil, fmt.Errorf("range %q: %w", f, err)
			}
			out = append(out, r)
		}
	}
	return out, nil
}

func parseRange(lo, hi string) (Range, error) {
	l, err := strconv.Atoi(lo)
	if err != nil {
		return Range{}, err
	}
	h, err := strconv.Atoi(hi)
	if err != nil {
		return Range{}, err
	}
	if l < 0 || h < l {
		return Range{}, fmt.Errorf("bad bounds %d-%d", l, h)
	}
	return Range{l, h}, nil
}

// repeats reports whether s is its first n bytes repeated.
func repeats(s string, n int) bool {
	if n == 0 || len(s)%n != 0 {
		return false
	}
	return strings.Repeat(s[:n], len(s)/n) == s
}

// IsDoubled reports whether id is some digit sequence repeated exactly twice.
func IsDoubled(id int) bool {
	s := strconv.Itoa(id)
	return len(s)%2 == 0 && repeats(s, len(s)/2)
}

// IsRepeated reports whether id is some digit sequence repeated at least
// twice.
func IsRepeated(id int) bool {
	s := strconv.Itoa(id)
	for n := 1; n <= len(s)/2; n++ {
		if repeats(s, n) {
			return true
		}
	}
	return false
}

// Part1 sums the ids in the ranges that are a sequence repeated twice.
func Part1(ranges []Range) int {
	var matched []int
	for _, r := range ranges {
		for id := r.Lo; id <= r.Hi; id++ {
			if IsDoubled(id) {
				matched = append(matched, id)
			}
		}
	}
	return aoc.Sum(matched...)
}

// Part2 sums the distinct repeated ids; overlapping ranges count an id once.
func Part2(ranges []Range) int {
	var seen aoc.Set[int]
	for _, r := range ranges {
		for id := r.Lo; id <= r.Hi; id++ {
			if IsRepeated(id) {
				seen.Add(id)
			}
		}
	}
	return aoc.Sum(seen.Slice()...)
}
