package graph

import (
	"gonum.org/v1/gonum/graph/simple"
)

// Map is an immutable GraphMap: a fixed node count, a name, and an ordered,
// possibly-empty, possibly-repeating neighbor list per node.
type Map struct {
	name      string
	adjacency [][]int
}

// Size is the fixed number of nodes.
func (m *Map) Size() int { return len(m.adjacency) }

// Name identifies the topology, e.g. "grid(100)".
func (m *Map) Name() string { return m.name }

// Neighbors returns the ordered neighbor list of node id. The returned
// slice must not be mutated by callers.
func (m *Map) Neighbors(id int) []int { return m.adjacency[id] }

// builder accumulates a deterministic, ordered adjacency list while using a
// gonum simple.DirectedGraph purely for O(1) "does this edge already exist"
// checks during generation. Duplicate edges are never added at this layer —
// generators that want duplicates (the hub graph) use multiBuilder instead.
type builder struct {
	g   *simple.DirectedGraph
	adj [][]int
}

func newBuilder(n int) *builder {
	g := simple.NewDirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	return &builder{g: g, adj: make([][]int, n)}
}

func (b *builder) hasEdge(i, j int) bool {
	return b.g.HasEdgeFromTo(int64(i), int64(j))
}

// addEdge records i->j once, in the order it is first decided. A repeated
// call with the same (i, j) is a no-op, since builder is for the
// non-duplicate-permitting generators.
func (b *builder) addEdge(i, j int) {
	if b.g.HasEdgeFromTo(int64(i), int64(j)) {
		return
	}
	b.g.SetEdge(simple.Edge{F: simple.Node(int64(i)), T: simple.Node(int64(j))})
	b.adj[i] = append(b.adj[i], j)
}

func (b *builder) outDegree(i int) int {
	return b.g.From(int64(i)).Len()
}

func (b *builder) build(name string) *Map {
	return &Map{name: name, adjacency: b.adj}
}
