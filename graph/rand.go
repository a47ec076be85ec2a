package graph

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cbarrick/cgp/rng"
)

// bernoulli draws a single Bernoulli(p) trial using r, backed by gonum's
// distuv.Bernoulli, matching the edge-inclusion coin flips of the
// Erdős–Rényi, Watts–Strogatz, and layered-DAG generators.
func bernoulli(r *rand.Rand, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	d := distuv.Bernoulli{P: p, Src: rng.GonumSource(r)}
	return d.Rand() == 1
}

// fillToSize draws distinct values uniformly from [0, n) until out has
// exactly count distinct members, skipping any value already in exclude:
// draw uniform without replacement until the set reaches the requested
// count.
func fillToSize(rng *rand.Rand, n, count int, exclude map[int]bool) map[int]bool {
	out := make(map[int]bool, count)
	for len(out) < count {
		v := rng.Intn(n)
		if exclude != nil && exclude[v] {
			continue
		}
		out[v] = true
	}
	return out
}
