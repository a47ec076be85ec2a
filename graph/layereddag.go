package graph

import (
	"fmt"
	"math/rand"
)

// LayeredDAG builds the layered directed-acyclic topology: layers times
// nodesPerLayer nodes arranged in layers layers; for every adjacent
// layer pair (l, l+1) and every (i in l, j in l+1), edge i->j is added
// independently with probability p. Edges only ever point from a lower
// layer to the next, which guarantees acyclicity.
func LayeredDAG(layers, nodesPerLayer int, p float64, rng *rand.Rand) *Map {
	if layers <= 0 || nodesPerLayer <= 0 {
		panic(fmt.Sprintf("graph: layeredDAG requires positive layers and nodesPerLayer, got %d, %d", layers, nodesPerLayer))
	}
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("graph: layeredDAG requires p in [0,1], got %v", p))
	}

	n := layers * nodesPerLayer
	b := newBuilder(n)
	for l := 0; l < layers-1; l++ {
		for i := 0; i < nodesPerLayer; i++ {
			src := l*nodesPerLayer + i
			for j := 0; j < nodesPerLayer; j++ {
				dst := (l+1)*nodesPerLayer + j
				if bernoulli(rng, p) {
					b.addEdge(src, dst)
				}
			}
		}
	}
	return b.build(fmt.Sprintf("layeredDAG(%d,%d,%v)", layers, nodesPerLayer, p))
}
