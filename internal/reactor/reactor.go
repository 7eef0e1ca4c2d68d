// Package reactor solves day 11: counting the data paths through a
// network of devices.
package reactor

import (
	"fmt"
	"strings"

	aoc "github.com/ertugungor/advent-of-code-25"
)

// Well known device names.
const (
	You    = "you"
	Server = "svr"
	Out    = "out"
	DAC    = "dac"
	FFT    = "fft"
)

// Parse reads lines of the form "aaa: bbb ccc" into a directed graph.
func Parse(lines []string) (*aoc.Graph[string], error) {
	var g aoc.Graph[string]
	for i, line := range lines {
		name, outs, ok := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("line %d: bad device %q", i+1, line)
		}
		g.AddNode(name)
		for _, o := range strings.Fields(outs) {
			g.AddEdge(name, o)
		}
	}
	return &g, nil
}

func countPaths(g *aoc.Graph[string], from, to string) (int, error) {
	for _, n := range []string{from, to} {
		if !g.Nodes[n] {
			return 0, fmt.Errorf("no device %q", n)
		}
	}
	n, err := g.CountPaths(from, to)
	if err != nil {
		return 0, fmt.Errorf("paths %s -> %s: %w", from, to, err)
	}
	return n, nil
}

// Part1 counts the paths from you to out.
func Part1(g *aoc.Graph[string]) (int, error) {
	return countPaths(g, You, Out)
}

// Part2 counts the paths from svr to out that visit both dac and fft, in
// either order.
func Part2(g *aoc.Graph[string]) (int, error) {
	total := 0
	for _, via := range [][2]string{{FFT, DAC}, {DAC, FFT}} {
		legs := []string{Server, via[0], via[1], Out}
		n := 1
		for i := 1; i < len(legs) && n > 0; i++ {
			c, err := countPaths(g, legs[i-1], legs[i])
			if err != nil {
				return 0, err
			}
			n *= c
		}
		total += n
	}
	return total, nil
}
