package aoc

import "errors"

// ErrCycle is returned by operations that need the graph to be acyclic.
var ErrCycle = errors.New("graph has a cycle")

// Graph is a directed graph.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]bool
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

// AddEdge adds the edge a -> b.
func (g *Graph[K]) AddEdge(a, b K) {
	InitMap(&g.Edges)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]bool)
	}
	g.Edges[a][b] = true
	g.AddNode(a)
	g.AddNode(b)
}

// ReachableNodes returns the set of nodes reachable from a, a included.
func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	q := NewQueue(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

// TopoOrder returns the nodes in keep in topological order, considering only
// edges between them. It returns ErrCycle if they do not form a DAG.
func (g *Graph[K]) TopoOrder(keep map[K]bool) ([]K, error) {
	indeg := make(map[K]int, len(keep))
	for a := range keep {
		indeg[a] += 0
		for b := range g.Edges[a] {
			if keep[b] {
				indeg[b]++
			}
		}
	}
	var q Queue[K]
	for k, d := range indeg {
		if d == 0 {
			q.Push(k)
		}
	}
	order := make([]K, 0, len(keep))
	q.While(func(a K) bool {
		order = append(order, a)
		for b := range g.Edges[a] {
			if !keep[b] {
				continue
			}
			indeg[b]--
			if indeg[b] == 0 {
				q.Push(b)
			}
		}
		return true
	})
	if len(order) != len(keep) {
		return nil, ErrCycle
	}
	return order, nil
}

// CountPaths returns the number of distinct paths from start to end. The
// part of the graph reachable from start must be acyclic.
func (g *Graph[K]) CountPaths(start, end K) (int, error) {
	if start == end {
		return 1, nil
	}
	reach := g.ReachableNodes(start)
	if !reach[end] {
		return 0, nil
	}
	order, err := g.TopoOrder(reach)
	if err != nil {
		return 0, err
	}
	counts := map[K]int{start: 1}
	for _, a := range order {
		n := counts[a]
		if n == 0 || a == end {
			continue
		}
		for b := range g.Edges[a] {
			counts[b] += n
		}
	}
	return counts[end], nil
}
