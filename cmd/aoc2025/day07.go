package main

import (
	aoc "github.com/ertugungor/advent-of-code-25"
	"github.com/ertugungor/advent-of-code-25/internal/beams"
)

func (s solver) manifold() *beams.Manifold {
	return aoc.MustGet(beams.Parse(s.Lines()))
}

/*
want=21

.......S.......
...............
.......^.......
...............
......^.^......
...............
.....^.^.^.....
...............
....^.^...^....
...............
...^.^...^.^...
...............
..^...^.....^..
...............
.^.^.^.^.^...^.
...............
*/
func (s solver) D7p1() any {
	return beams.Part1(s.manifold())
}

// want=40
func (s solver) D7p2() any {
	return beams.Part2(s.manifold())
}
