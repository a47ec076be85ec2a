package graph

import (
	"fmt"
	"math/rand"
	"sort"
)

// MultipleInAndOut builds the asymmetric hub topology: floor(n*fIn) in-hubs
// and floor(n*fOut) out-hubs are chosen uniformly. Every node i draws d²
// random out-edges if it is an out-hub, else d; then every in-hub
// additionally receives d² random incoming edges from other nodes.
// Duplicate edges are permitted and expected — downstream selection treats
// a repeated neighbor id as a legitimate weight boost — which is why this
// generator is backed by a multiBuilder rather than the dedup-on-write
// builder the other generators share.
func MultipleInAndOut(n int, fIn, fOut float64, d int, rng *rand.Rand) *Map {
	if n <= 0 {
		panic(fmt.Sprintf("graph: multipleInAndOut requires a positive size, got %d", n))
	}
	if d <= 0 {
		panic(fmt.Sprintf("graph: multipleInAndOut requires a positive d, got %d", d))
	}

	numIn := int(float64(n) * fIn)
	numOut := int(float64(n) * fOut)
	inHubs := fillToSize(rng, n, numIn, nil)
	outHubs := fillToSize(rng, n, numOut, nil)

	b := newMultiBuilder(n)
	for i := 0; i < n; i++ {
		degree := d
		if outHubs[i] {
			degree = d * d
		}
		for t := 0; t < degree; t++ {
			b.addEdge(i, randomOtherNode(rng, n, i))
		}
	}

	// Map iteration order is randomized; sort the hub ids so incoming edges
	// are added in a fixed order and the topology stays deterministic given
	// a seed.
	hubs := make([]int, 0, len(inHubs))
	for h := range inHubs {
		hubs = append(hubs, h)
	}
	sort.Ints(hubs)

	for _, h := range hubs {
		for t := 0; t < d*d; t++ {
			source := randomOtherNode(rng, n, h)
			b.addEdge(source, h)
		}
	}

	return b.build(fmt.Sprintf("multipleInAndOut(%d,%v,%v,%d)", n, fIn, fOut, d))
}

// randomOtherNode draws a node uniformly from [0, n) excluding self. When
// n == 1, self is the only possible node and is returned.
func randomOtherNode(rng *rand.Rand, n, self int) int {
	if n < 2 {
		return self
	}
	for {
		c := rng.Intn(n)
		if c != self {
			return c
		}
	}
}
