package aoc

import (
	"errors"
	"testing"
)

func diamond() *Graph[string] {
	var g Graph[string]
	g.AddEdge("a", "b")
	g.AddEdge("a", "c")
	g.AddEdge("b", "d")
	g.AddEdge("c", "d")
	g.AddEdge("d", "e")
	g.AddEdge("a", "e")
	g.AddNode("lonely")
	return &g
}

func TestCountPaths(t *testing.T) {
	g := diamond()
	tests := []struct {
		from, to string
		want     int
	}{
		{"a", "e", 3},
		{"a", "d", 2},
		{"b", "e", 1},
		{"e", "a", 0},
		{"a", "a", 1},
		{"a", "lonely", 0},
	}
	for _, tt := range tests {
		got, err := g.CountPaths(tt.from, tt.to)
		if err != nil {
			t.Errorf("CountPaths(%s, %s): %v", tt.from, tt.to, err)
			continue
		}
		if got != tt.want {
			t.Errorf("CountPaths(%s, %s) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestCountPathsCycle(t *testing.T) {
	g := diamond()
	g.AddEdge("d", "b")
	if _, err := g.CountPaths("a", "e"); !errors.Is(err, ErrCycle) {
		t.Errorf("CountPaths err = %v, want ErrCycle", err)
	}
	// The cycle is not reachable from e.
	g.AddEdge("e", "f")
	if n, err := g.CountPaths("e", "f"); err != nil || n != 1 {
		t.Errorf("CountPaths(e, f) = %d, %v; want 1, nil", n, err)
	}
}

func TestAddEdgeTwice(t *testing.T) {
	g := diamond()
	g.AddEdge("a", "b")
	if n, err := g.CountPaths("a", "e"); err != nil || n != 3 {
		t.Errorf("CountPaths(a, e) = %d, %v; want 3, nil", n, err)
	}
}

func TestTopoOrder(t *testing.T) {
	g := diamond()
	order, err := g.TopoOrder(g.ReachableNodes("a"))
	if err != nil {
		t.Fatal(err)
	}
	pos := map[string]int{}
	for i, n := range order {
		pos[n] = i
	}
	if len(order) != 5 {
		t.Fatalf("order = %v; want 5 nodes", order)
	}
	for a, outs := range g.Edges {
		for b := range outs {
			if pos[a] >= pos[b] {
				t.Errorf("%s comes after %s in %v", a, b, order)
			}
		}
	}
}
