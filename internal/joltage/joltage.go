// Package joltage solves day 3: picking batteries from a bank of digits to
// get the largest joltage.
//
// Each bank is a line of digits. Turning on batteries keeps their order, and
// the chosen digits are read as a decimal number with at most maxSlots
// digits. The largest value is found with a memoized search over
// (index, slots left), using a fresh memo table for every bank because the
// place value of a digit depends on the bank's length.
package joltage

import (
	"errors"
	"fmt"

	aoc "github.com/ertugungor/advent-of-code-25"
)

const (
	// Part1Slots is how many batteries each bank may turn on in part 1.
	Part1Slots = 2
	// Part2Slots is how many batteries each bank may turn on in part 2.
	Part2Slots = 12

	// MaxDigits is the longest joltage that always fits in an int64.
	MaxDigits = 18
)

// ErrOverflow is returned when a joltage could have more than MaxDigits
// digits.
var ErrOverflow = errors.New("joltage overflows int64")

// search holds the state for one bank.
type search struct {
	digits []int
	memo   [][]int64 // [idx][slots]; -1 means unknown
}

func newSearch(digits []int, maxSlots int) *search {
	memo := make([][]int64, len(digits))
	for i := range memo {
		memo[i] = make([]int64, maxSlots+1)
		for j := range memo[i] {
			memo[i][j] = -1
		}
	}
	return &search{digits: digits, memo: memo}
}

// best returns the largest value obtainable from digits[idx:] with slots
// slots left.
func (s *search) best(idx, slots int) int64 {
	if idx >= len(s.digits) || slots <= 0 {
		return 0
	}
	if v := s.memo[idx][slots]; v != -1 {
		return v
	}
	power := min(slots-1, len(s.digits)-idx-1)
	include := int64(s.digits[idx])*aoc.Pow10(power) + s.best(idx+1, slots-1)
	exclude := s.best(idx+1, slots)
	v := max(include, exclude)
	s.memo[idx][slots] = v
	return v
}

// MaxJoltage returns the largest joltage bank can produce using at most
// maxSlots batteries.
func MaxJoltage(bank string, maxSlots int) (int64, error) {
	digits, err := aoc.ParseDigits(bank)
	if err != nil {
		return 0, fmt.Errorf("bank %q: %w", bank, err)
	}
	// With as many slots as digits every digit fits, so more slots change
	// nothing.
	maxSlots = min(maxSlots, len(digits))
	if maxSlots <= 0 {
		return 0, nil
	}
	if maxSlots > MaxDigits {
		return 0, fmt.Errorf("bank %q with %d slots: %w", bank, maxSlots, ErrOverflow)
	}
	return newSearch(digits, maxSlots).best(0, maxSlots), nil
}

// Solve returns the total of MaxJoltage over all banks.
func Solve(banks []string, maxSlots int) (int64, error) {
	var total int64
	for i, bank := range banks {
		v, err := MaxJoltage(bank, maxSlots)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += v
	}
	return total, nil
}

// Part1 sums the best two-battery joltage of each bank.
func Part1(banks []string) (int64, error) {
	return Solve(banks, Part1Slots)
}

// Part2 sums the best twelve-battery joltage of each bank.
func Part2(banks []string) (int64, error) {
	return Solve(banks, Part2Slots)
}
