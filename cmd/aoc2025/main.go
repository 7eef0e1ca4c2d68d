// Command aoc2025 runs the 2025 Advent of Code solutions.
//
// Each day's input is read from <input>/dayNN/long.txt. The sample in the
// doc comment of every solver method is checked before the real input.
package main

import (
	"embed"

	aoc "github.com/ertugungor/advent-of-code-25"
)

func main() {
	aoc.Run(2025, sources, &solver{})
}

//go:embed *.go
var sources embed.FS

type solver struct {
	*aoc.Puzzle
}
