package main

import (
	aoc "github.com/ertugungor/advent-of-code-25"
	"github.com/ertugungor/advent-of-code-25/internal/rolls"
)

func (s solver) rollGrid() aoc.Grid[byte] {
	return aoc.MustGet(aoc.ParseGrid(s.Lines()))
}

/*
want=13

..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.
*/
func (s solver) D4p1() any {
	return rolls.Part1(s.rollGrid())
}

// want=43
func (s solver) D4p2() any {
	return rolls.Part2(s.rollGrid())
}
