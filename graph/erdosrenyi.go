package graph

import (
	"fmt"
	"math/rand"
)

// ErdosRenyi builds the Erdős–Rényi G(n, p) topology: for every ordered
// pair i != j, edge i->j is added independently with probability p.
func ErdosRenyi(n int, p float64, rng *rand.Rand) *Map {
	if n <= 0 {
		panic(fmt.Sprintf("graph: erdosRenyi requires a positive size, got %d", n))
	}
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("graph: erdosRenyi requires p in [0,1], got %v", p))
	}
	b := newBuilder(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if bernoulli(rng, p) {
				b.addEdge(i, j)
			}
		}
	}
	return b.build(fmt.Sprintf("erdosRenyi(%d,%v)", n, p))
}
