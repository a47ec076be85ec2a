package sel_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cbarrick/cgp"
	"github.com/cbarrick/cgp/sel"
)

func phenos(fitnesses ...float64) []cgp.Phenotype[int] {
	out := make([]cgp.Phenotype[int], len(fitnesses))
	for i, f := range fitnesses {
		out[i] = cgp.NewPhenotype(i, 0).WithFitness(f)
	}
	return out
}

func TestTournamentMinimizePicksBest(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pool := phenos(5, 1, 9, 3)
	// k much larger than the pool: drawing with replacement, every member is
	// all but guaranteed to appear, so the winner must be the pool's best.
	sel := sel.NewTournament[int](64)
	winners := sel.Select(pool, 2, cgp.Minimize, rng)
	for _, w := range winners {
		f, _ := w.Fitness()
		assert.Equal(t, 1.0, f)
	}
}

func TestTournamentMaximizePicksBest(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pool := phenos(5, 1, 9, 3)
	sel := sel.NewTournament[int](64)
	winners := sel.Select(pool, 2, cgp.Maximize, rng)
	for _, w := range winners {
		f, _ := w.Fitness()
		assert.Equal(t, 9.0, f)
	}
}

func TestTournamentDefaultK(t *testing.T) {
	s := sel.NewTournament[int](0)
	assert.Equal(t, 3, s.K)
}

func TestTournamentReturnsRequestedCount(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	pool := phenos(1, 2, 3)
	s := sel.NewTournament[int](3)
	winners := s.Select(pool, 5, cgp.Minimize, rng)
	assert.Len(t, winners, 5)
}
