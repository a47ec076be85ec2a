package graph

import (
	"fmt"
	"math/rand"
)

// WattsStrogatz builds the small-world topology: a ring lattice where node
// i connects to (i+1)...(i+k/2) mod n, then each edge is independently
// rewired to a uniformly chosen target (excluding i itself and i's existing
// out-neighbors) with probability beta. At beta=0 this is exactly the
// deterministic ring lattice.
func WattsStrogatz(n, k int, beta float64, rng *rand.Rand) *Map {
	if n <= 0 {
		panic(fmt.Sprintf("graph: wattsStrogatz requires a positive size, got %d", n))
	}
	if k%2 != 0 || k < 0 {
		panic(fmt.Sprintf("graph: wattsStrogatz requires an even, non-negative k, got %d", k))
	}
	if beta < 0 || beta > 1 {
		panic(fmt.Sprintf("graph: wattsStrogatz requires beta in [0,1], got %v", beta))
	}

	half := k / 2
	b := newBuilder(n)
	for i := 0; i < n; i++ {
		for d := 1; d <= half; d++ {
			target := (i + d) % n
			if bernoulli(rng, beta) {
				target = rewireTarget(rng, n, i, b)
			}
			b.addEdge(i, target)
		}
	}
	return b.build(fmt.Sprintf("wattsStrogatz(%d,%d,%v)", n, k, beta))
}

// rewireTarget draws a replacement target for an edge out of i: uniform
// over nodes other than i and not already an out-neighbor of i.
func rewireTarget(rng *rand.Rand, n, i int, b *builder) int {
	for {
		cand := rng.Intn(n)
		if cand == i {
			continue
		}
		if b.hasEdge(i, cand) {
			continue
		}
		return cand
	}
}
