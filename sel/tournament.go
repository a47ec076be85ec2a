package sel

import (
	"math/rand"

	"github.com/cbarrick/cgp"
)

// Tournament is a TournamentSelector(k): to produce count winners, it
// repeats count times drawing k competitors with replacement from the pool
// and keeping the best, first occurrence winning ties.
type Tournament[G any] struct {
	K int
}

// NewTournament returns a Tournament with the given k, or k=3 if k <= 0.
func NewTournament[G any](k int) Tournament[G] {
	if k <= 0 {
		k = 3
	}
	return Tournament[G]{K: k}
}

// Select draws count winners from pool, one k-ary tournament per winner.
func (t Tournament[G]) Select(pool []cgp.Phenotype[G], count int, opt cgp.Optimize, rng *rand.Rand) []cgp.Phenotype[G] {
	k := t.K
	if k <= 0 {
		k = 3
	}
	winners := make([]cgp.Phenotype[G], count)
	for i := range winners {
		winners[i] = once(pool, k, opt, rng)
	}
	return winners
}

// once runs a single k-ary tournament, returning the most-fit competitor.
// Ties are broken by first occurrence: opt.Better is a strict comparison,
// so a later draw only displaces the incumbent by being strictly better.
func once[G any](pool []cgp.Phenotype[G], k int, opt cgp.Optimize, rng *rand.Rand) cgp.Phenotype[G] {
	bestIdx := rng.Intn(len(pool))
	bestFit, _ := pool[bestIdx].Fitness()
	for i := 1; i < k; i++ {
		idx := rng.Intn(len(pool))
		fit, _ := pool[idx].Fitness()
		if opt.Better(fit, bestFit) {
			bestFit = fit
			bestIdx = idx
		}
	}
	return pool[bestIdx]
}
