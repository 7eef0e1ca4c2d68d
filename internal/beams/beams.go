// Package beams solves day 7: a tachyon beam entering a manifold at S and
// travelling down, split left and right by every ^ it meets.
package beams

import (
	"errors"

	aoc "github.com/ertugungor/advent-of-code-25"
)

const (
	Start    = 'S'
	Splitter = '^'
)

var ErrNoStart = errors.New("no start position")

// Manifold is the parsed diagram.
type Manifold struct {
	grid  aoc.Grid[byte]
	start aoc.Pt
}

func Parse(lines []string) (*Manifold, error) {
	g, err := aoc.ParseGrid(lines)
	if err != nil {
		return nil, err
	}
	start, ok := aoc.Find(g, byte(Start))
	if !ok {
		return nil, ErrNoStart
	}
	return &Manifold{grid: g, start: start}, nil
}

// simulate walks the beams row by row below the start. timelines[x] is the
// number of distinct paths that reach column x of the current row. It
// returns the number of splitters hit and the final timelines.
func (m *Manifold) simulate() (hits int, timelines []int) {
	size := m.grid.Size()
	timelines = make([]int, size.X)
	timelines[m.start.X] = 1
	for y := m.start.Y + 1; y < size.Y; y++ {
		next := make([]int, size.X)
		for x, n := range timelines {
			if n == 0 {
				continue
			}
			if m.grid.At(aoc.Pt{X: x, Y: y}) != Splitter {
				next[x] += n
				continue
			}
			hits++
			if x > 0 {
				next[x-1] += n
			}
			if x+1 < size.X {
				next[x+1] += n
			}
		}
		timelines = next
	}
	return hits, timelines
}

// Part1 counts the splitters a beam reaches.
func Part1(m *Manifold) int {
	hits, _ := m.simulate()
	return hits
}

// Part2 counts the timelines a single particle can end up in.
func Part2(m *Manifold) int {
	_, timelines := m.simulate()
	return aoc.Sum(timelines...)
}
