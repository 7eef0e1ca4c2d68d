package main

import (
	aoc "github.com/ertugungor/advent-of-code-25"
	"github.com/ertugungor/advent-of-code-25/internal/fresh"
)

func (s solver) inventory() *fresh.Inventory {
	return aoc.MustGet(fresh.Parse(s.RawLines()))
}

/*
want=3

3-5
10-14
16-20
12-18

1
5
8
11
17
32
*/
func (s solver) D5p1() any {
	inv := s.inventory()
	s.Debug(inv.Ranges)
	return fresh.Part1(inv)
}

// want=14
func (s solver) D5p2() any {
	return fresh.Part2(s.inventory())
}
