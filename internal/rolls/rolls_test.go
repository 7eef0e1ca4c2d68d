package rolls

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	aoc "github.com/ertugungor/advent-of-code-25"
)

const sample = `
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
`

func parse(t *testing.T, in string) aoc.Grid[byte] {
	t.Helper()
	g, err := aoc.ParseGrid(aoc.ParseLines([]byte(in)))
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestSample(t *testing.T) {
	g := parse(t, sample)
	if got, want := Part1(g), 13; got != want {
		t.Errorf("Part1 = %d, want %d", got, want)
	}
	before := g.Clone()
	if got, want := Part2(g), 43; got != want {
		t.Errorf("Part2 = %d, want %d", got, want)
	}
	if diff := cmp.Diff(before, g); diff != "" {
		t.Errorf("Part2 modified its input (-before +after):\n%s", diff)
	}
}

func TestAccessible(t *testing.T) {
	g := parse(t, `
@@@
@@@
@@@
`)
	// Corners have 3 neighbors, edges 5, the center 8.
	want := []aoc.Pt{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}}
	if diff := cmp.Diff(want, Accessible(g)); diff != "" {
		t.Errorf("Accessible mismatch (-want +got):\n%s", diff)
	}
	if got, want := Part2(g), 9; got != want {
		t.Errorf("Part2 = %d, want %d", got, want)
	}
}

func TestEmptyGrid(t *testing.T) {
	g := parse(t, "...\n...\n")
	if got := Part1(g); got != 0 {
		t.Errorf("Part1 = %d, want 0", got)
	}
	if got := Part2(g); got != 0 {
		t.Errorf("Part2 = %d, want 0", got)
	}
}

func TestLongInput(t *testing.T) {
	lines, err := aoc.ReadLines(aoc.InputPath("../..", 4))
	if err != nil {
		t.Skipf("no input: %v", err)
	}
	g, err := aoc.ParseGrid(lines)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Part1(g), 1533; got != want {
		t.Errorf("Part1 = %d, want %d", got, want)
	}
	if got, want := Part2(g), 9206; got != want {
		t.Errorf("Part2 = %d, want %d", got, want)
	}
}
