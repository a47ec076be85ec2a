package stream

import (
	"context"
	"math/rand"

	"github.com/cbarrick/cgp"
)

// Evolver runs one generation transition. *cellular.Engine[G] satisfies this
// without any adapter, but Stream depends only on the method shape so it can
// drive any step function — a real engine, a test double, or a replay.
type Evolver[G any] interface {
	Evolve(ctx context.Context, start cgp.EvolutionStart[G]) (cgp.EvolutionResult[G], error)
}

// Stream is a pull-based, lazy sequence of generation results: r0, r1, ...
// Each call to Next runs exactly one more generation. A Stream that has
// failed returns ok=false forever after; Err reports why.
type Stream[G any] struct {
	ctx     context.Context
	evolver Evolver[G]
	current cgp.EvolutionStart[G]
	err     error
}

// New returns a Stream that will evolve start forward using evolver, one
// generation per Next call.
func New[G any](ctx context.Context, evolver Evolver[G], start cgp.EvolutionStart[G]) *Stream[G] {
	return &Stream[G]{ctx: ctx, evolver: evolver, current: start}
}

// Next advances the stream by one generation. ok is false once the stream
// has failed; call Err to retrieve the failure.
func (s *Stream[G]) Next() (result cgp.EvolutionResult[G], ok bool) {
	if s.err != nil {
		return cgp.EvolutionResult[G]{}, false
	}
	result, err := s.evolver.Evolve(s.ctx, s.current)
	if err != nil {
		s.err = err
		return cgp.EvolutionResult[G]{}, false
	}
	s.current = cgp.EvolutionStart[G]{Population: result.Population, Generation: result.Generation}
	return result, true
}

// Err reports the error that stopped the stream, or nil if it has not
// stopped (or stopped only because a caller-side limit was reached).
func (s *Stream[G]) Err() error { return s.err }

// Normalize extends start's population with freshly constructed random
// phenotypes, drawn from problem via rng at start's generation, until it has
// exactly size elements. A population already at or beyond size passes
// through untouched — this never truncates.
func Normalize[G any](start cgp.EvolutionStart[G], problem cgp.Problem[G], size int, rng *rand.Rand) cgp.EvolutionStart[G] {
	if len(start.Population) >= size {
		return start
	}
	pop := make(cgp.Population[G], len(start.Population), size)
	copy(pop, start.Population)
	for len(pop) < size {
		pop = append(pop, cgp.NewPhenotype(problem.NewGenotype(rng), start.Generation))
	}
	return cgp.EvolutionStart[G]{Population: pop, Generation: start.Generation}
}

// Limit collects the first n generations of s. It returns the results
// collected so far and s.Err() if the stream fails before reaching n.
func Limit[G any](s *Stream[G], n int) ([]cgp.EvolutionResult[G], error) {
	out := make([]cgp.EvolutionResult[G], 0, n)
	for i := 0; i < n; i++ {
		r, ok := s.Next()
		if !ok {
			return out, s.Err()
		}
		out = append(out, r)
	}
	return out, nil
}

// LimitByFitnessThreshold collects generations of s until the best fitness
// so far has reached or passed threshold in opt's direction, inclusive of
// the crossing generation.
func LimitByFitnessThreshold[G any](s *Stream[G], opt cgp.Optimize, threshold float64) ([]cgp.EvolutionResult[G], error) {
	var out []cgp.EvolutionResult[G]
	for {
		r, ok := s.Next()
		if !ok {
			return out, s.Err()
		}
		out = append(out, r)

		_, best := r.Best()
		bestFit, _ := best.Fitness()
		if !opt.Better(threshold, bestFit) {
			// threshold is no longer strictly better than what was reached:
			// the goal has been met or passed.
			return out, nil
		}
	}
}

// ToBestEvolutionResult folds results down to the one whose best phenotype
// is optimal under its own Optimize direction. It panics on an empty slice.
func ToBestEvolutionResult[G any](results []cgp.EvolutionResult[G]) cgp.EvolutionResult[G] {
	if len(results) == 0 {
		panic("stream: ToBestEvolutionResult requires at least one result")
	}
	bestIdx := 0
	_, bestPheno := results[0].Best()
	bestFit, _ := bestPheno.Fitness()
	opt := results[0].Optimize

	for i := 1; i < len(results); i++ {
		_, p := results[i].Best()
		f, _ := p.Fitness()
		if opt.Better(f, bestFit) {
			bestFit = f
			bestIdx = i
		}
	}
	return results[bestIdx]
}

// ToBestPhenotype is ToBestEvolutionResult followed by Best, returning only
// the optimal phenotype.
func ToBestPhenotype[G any](results []cgp.EvolutionResult[G]) cgp.Phenotype[G] {
	_, best := ToBestEvolutionResult(results).Best()
	return best
}
