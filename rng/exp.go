package rng

import (
	"math/rand"

	exprand "golang.org/x/exp/rand"
)

// GonumSource adapts a *rand.Rand to the exp/rand Source interface gonum's
// distuv distributions draw from, so ephemeral-constant sampling and edge
// coin flips stay on the same deterministic streams as every other draw.
func GonumSource(r *rand.Rand) exprand.Source {
	return gonumSource{r: r}
}

type gonumSource struct{ r *rand.Rand }

func (s gonumSource) Uint64() uint64 { return s.r.Uint64() }

// Seed is required by the Source interface but never called by gonum's
// distributions when they are handed an explicit Src.
func (s gonumSource) Seed(seed uint64) { s.r.Seed(int64(seed)) }
