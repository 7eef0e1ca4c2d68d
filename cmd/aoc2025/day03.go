package main

import (
	aoc "github.com/ertugungor/advent-of-code-25"
	"github.com/ertugungor/advent-of-code-25/internal/joltage"
)

/*
want=357

987654321111111
811111111111119
234234234234278
818181911112111
*/
func (s solver) D3p1() any {
	return aoc.MustGet(joltage.Part1(s.Lines()))
}

// want=3121910778619
func (s solver) D3p2() any {
	return aoc.MustGet(joltage.Part2(s.Lines()))
}
