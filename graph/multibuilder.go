package graph

import (
	"gonum.org/v1/gonum/graph/multi"
)

// multiBuilder accumulates an ordered adjacency list on top of a gonum
// multi.DirectedGraph, which (unlike simple.DirectedGraph) keeps parallel
// edges as distinct lines. This backs the asymmetric hub generator, the one
// topology allowed to carry duplicate edges.
type multiBuilder struct {
	g   *multi.DirectedGraph
	adj [][]int
}

func newMultiBuilder(n int) *multiBuilder {
	g := multi.NewDirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(multi.Node(int64(i)))
	}
	return &multiBuilder{g: g, adj: make([][]int, n)}
}

// addEdge always records a new line i->j, even if one already exists.
func (b *multiBuilder) addEdge(i, j int) {
	line := b.g.NewLine(multi.Node(int64(i)), multi.Node(int64(j)))
	b.g.SetLine(line)
	b.adj[i] = append(b.adj[i], j)
}

func (b *multiBuilder) build(name string) *Map {
	return &Map{name: name, adjacency: b.adj}
}
