package main

import (
	aoc "github.com/ertugungor/advent-of-code-25"
	"github.com/ertugungor/advent-of-code-25/internal/ids"
)

func (s solver) idRanges() []ids.Range {
	return aoc.MustGet(ids.ParseRanges(s.Lines()))
}

/*
want=1227775554

11-22,95-115,998-1012,1188511880-1188511890,222220-222224,1698522-1698528,446443-446449,38593856-38593862,565653-565659,824824821-824824827,2121212118-2121212124
*/
func (s solver) D2p1() any {
	return ids.Part1(s.idRanges())
}

// want=4174379265
func (s solver) D2p2() any {
	return ids.Part2(s.idRanges())
}
