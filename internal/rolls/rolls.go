// Package rolls solves day 4: paper rolls on a grid that a forklift can
// reach when fewer than four other rolls surround them.
package rolls

import (
	aoc "github.com/ertugungor/advent-of-code-25"
)

const (
	Roll  = '@'
	Empty = '.'
)

// maxNeighbors is the most rolls that may surround an accessible roll.
const maxNeighbors = 3

// Accessible returns the rolls in g with at most maxNeighbors neighboring
// rolls.
func Accessible(g aoc.Grid[byte]) []aoc.Pt {
	var out []aoc.Pt
	g.ForEach(func(p aoc.Pt, c byte) bool {
		if c == Roll && aoc.CountNeighbors(g, p, byte(Roll)) <= maxNeighbors {
			out = append(out, p)
		}
		return true
	})
	return out
}

// Part1 counts the rolls a forklift can reach.
func Part1(g aoc.Grid[byte]) int {
	return len(Accessible(g))
}

// Part2 keeps removing accessible rolls until none are left to remove and
// returns how many were removed. g is not modified.
func Part2(g aoc.Grid[byte]) int {
	g = g.Clone()
	removed := 0
	for {
		before := g.Hash()
		for _, p := range Accessible(g) {
			g.Set(p, Empty)
			removed++
		}
		if g.Hash() == before {
			return removed
		}
	}
}
