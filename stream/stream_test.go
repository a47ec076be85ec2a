package stream_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbarrick/cgp"
	"github.com/cbarrick/cgp/stream"
)

// fakeEvolver produces a one-phenotype population whose fitness counts down
// by 1 each generation, so threshold-crossing and limit behavior are easy to
// predict exactly. It fails on the failAt'th call if failAt > 0.
type fakeEvolver struct {
	calls  int
	failAt int
}

func (f *fakeEvolver) Evolve(_ context.Context, start cgp.EvolutionStart[int]) (cgp.EvolutionResult[int], error) {
	f.calls++
	if f.failAt > 0 && f.calls == f.failAt {
		return cgp.EvolutionResult[int]{}, errors.New("fakeEvolver: forced failure")
	}
	gen := start.Generation + 1
	fit := 10.0 - float64(gen)
	pop := cgp.Population[int]{cgp.NewPhenotype(gen, gen).WithFitness(fit)}
	return cgp.EvolutionResult[int]{Population: pop, Generation: gen, Optimize: cgp.Minimize}, nil
}

type intProblem struct{}

func (intProblem) NewGenotype(rng *rand.Rand) int { return rng.Intn(1000) }
func (intProblem) Fitness(g int) float64          { return float64(g) }

func TestLimitCollectsExactlyN(t *testing.T) {
	s := stream.New[int](context.Background(), &fakeEvolver{}, cgp.EvolutionStart[int]{Generation: 0})
	results, err := stream.Limit(s, 5)
	require.NoError(t, err)
	require.Len(t, results, 5)
	assert.Equal(t, 5, results[4].Generation)
	lastFit, _ := results[4].Population[0].Fitness()
	assert.Equal(t, 5.0, lastFit)
}

func TestLimitPropagatesFailure(t *testing.T) {
	s := stream.New[int](context.Background(), &fakeEvolver{failAt: 3}, cgp.EvolutionStart[int]{Generation: 0})
	results, err := stream.Limit(s, 5)
	assert.Error(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, err, s.Err())
}

func TestLimitByFitnessThresholdStopsOnCrossing(t *testing.T) {
	s := stream.New[int](context.Background(), &fakeEvolver{}, cgp.EvolutionStart[int]{Generation: 0})
	results, err := stream.LimitByFitnessThreshold(s, cgp.Minimize, 6)
	require.NoError(t, err)
	require.Len(t, results, 4)
	lastFit, _ := results[3].Population[0].Fitness()
	assert.Equal(t, 6.0, lastFit)
}

func TestToBestEvolutionResultMinimize(t *testing.T) {
	results := []cgp.EvolutionResult[int]{
		{Population: cgp.Population[int]{cgp.NewPhenotype(1, 0).WithFitness(5)}, Optimize: cgp.Minimize},
		{Population: cgp.Population[int]{cgp.NewPhenotype(2, 0).WithFitness(1)}, Optimize: cgp.Minimize},
		{Population: cgp.Population[int]{cgp.NewPhenotype(3, 0).WithFitness(9)}, Optimize: cgp.Minimize},
	}
	best := stream.ToBestEvolutionResult(results)
	f, _ := best.Population[0].Fitness()
	assert.Equal(t, 1.0, f)

	pheno := stream.ToBestPhenotype(results)
	f2, _ := pheno.Fitness()
	assert.Equal(t, 1.0, f2)
	assert.Equal(t, 2, pheno.Genotype)
}

func TestToBestEvolutionResultMaximize(t *testing.T) {
	results := []cgp.EvolutionResult[int]{
		{Population: cgp.Population[int]{cgp.NewPhenotype(1, 0).WithFitness(5)}, Optimize: cgp.Maximize},
		{Population: cgp.Population[int]{cgp.NewPhenotype(2, 0).WithFitness(1)}, Optimize: cgp.Maximize},
		{Population: cgp.Population[int]{cgp.NewPhenotype(3, 0).WithFitness(9)}, Optimize: cgp.Maximize},
	}
	best := stream.ToBestEvolutionResult(results)
	f, _ := best.Population[0].Fitness()
	assert.Equal(t, 9.0, f)
}

func TestNormalizeExtendsShortPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	start := cgp.EvolutionStart[int]{
		Population: cgp.Population[int]{cgp.NewPhenotype(42, 3).WithFitness(1)},
		Generation: 3,
	}
	out := stream.Normalize[int](start, intProblem{}, 5, rng)
	require.Len(t, out.Population, 5)
	assert.Equal(t, 42, out.Population[0].Genotype)
	for _, p := range out.Population[1:] {
		assert.Equal(t, 3, p.Generation)
		_, has := p.Fitness()
		assert.False(t, has)
	}
}

func TestNormalizeNoopWhenAlreadyLargeEnough(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	start := cgp.EvolutionStart[int]{
		Population: cgp.Population[int]{
			cgp.NewPhenotype(1, 0),
			cgp.NewPhenotype(2, 0),
		},
		Generation: 0,
	}
	out := stream.Normalize[int](start, intProblem{}, 2, rng)
	assert.Equal(t, start.Population, out.Population)
}
