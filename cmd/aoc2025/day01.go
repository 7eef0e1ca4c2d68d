package main

import (
	aoc "github.com/ertugungor/advent-of-code-25"
	"github.com/ertugungor/advent-of-code-25/internal/dial"
)

func (s solver) moves() []dial.Move {
	return aoc.MustGet(dial.ParseMoves(s.Lines()))
}

/*
want=3

L68
L30
R48
L5
R60
L55
L1
L99
R14
L82
*/
func (s solver) D1p1() any {
	return dial.Part1(s.moves())
}

// want=6
func (s solver) D1p2() any {
	moves := s.moves()
	count := dial.Part2(moves)
	s.Debugf("%d moves, %d zeros", len(moves), count)
	return count
}
