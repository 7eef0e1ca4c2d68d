package aoc

import (
	"fmt"
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Grid[T any] [][]T

// ParseGrid builds a byte grid from lines. All lines must be the same
// length.
func ParseGrid(lines []string) (Grid[byte], error) {
	g := make(Grid[byte], len(lines))
	for y, line := range lines {
		if y > 0 && len(line) != len(lines[0]) {
			return nil, fmt.Errorf("row %d has width %d; want %d", y, len(line), len(lines[0]))
		}
		g[y] = []byte(line)
	}
	return g, nil
}

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.X < 0 || p.Y < 0 || p.Y >= len(g) || p.X >= len(g[p.Y]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// Clone returns a deep copy of g.
func (g Grid[T]) Clone() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.X, size.Y)
	for y := range g {
		copy(out[y], g[y])
	}
	return out
}

// ForEach calls f for every cell in row-major order until f returns false.
func (g Grid[T]) ForEach(f func(Pt, T) (keepGoing bool)) {
	for y, row := range g {
		for x, v := range row {
			if !f(Pt{x, y}, v) {
				return
			}
		}
	}
}

// Find returns the first point holding v.
func Find[T comparable](g Grid[T], v T) (Pt, bool) {
	var (
		found Pt
		ok    bool
	)
	g.ForEach(func(p Pt, c T) bool {
		if c == v {
			found, ok = p, true
			return false
		}
		return true
	})
	return found, ok
}

// CountNeighbors returns how many of the 8 neighbors of p hold v.
func CountNeighbors[T comparable](g Grid[T], p Pt, v T) int {
	n := 0
	p.ForNeighbors(func(q Pt) bool {
		if c, ok := g.AtOk(q); ok && c == v {
			n++
		}
		return true
	})
	return n
}

var hashers sync.Map // map[reflect.Type]func(*Grid[T]) deephash.Sum

// Hash returns a digest of the grid contents, suitable for detecting when
// an iterated grid stops changing.
func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	h, ok := hashers.Load(rt)
	if !ok {
		h, _ = hashers.LoadOrStore(rt, deephash.HasherForType[Grid[T]]())
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}
