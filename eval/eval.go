package eval

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cbarrick/cgp"
)

// Parallel evaluates each not-yet-fit phenotype of a population concurrently,
// bounded to Workers simultaneous fitness computations. Workers <= 0 means
// unbounded.
type Parallel[G any] struct {
	Workers int
}

// New returns a Parallel evaluator bounded to workers concurrent tasks.
func New[G any](workers int) Parallel[G] {
	return Parallel[G]{Workers: workers}
}

// Eval implements cgp.Evaluator[G]. Phenotypes that already carry a fitness
// pass through unchanged; every other phenotype's genotype is scored via
// problem.Fitness in its own goroutine, one per index, writing only its own
// slot.
func (p Parallel[G]) Eval(ctx context.Context, problem cgp.Problem[G], pop cgp.Population[G]) (cgp.Population[G], error) {
	out := make(cgp.Population[G], len(pop))
	copy(out, pop)

	g, gCtx := errgroup.WithContext(ctx)
	if p.Workers > 0 {
		g.SetLimit(p.Workers)
	}

	for i := range out {
		if _, has := out[i].Fitness(); has {
			continue
		}
		index := i
		g.Go(func() (err error) {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
			}
			defer func() {
				if r := recover(); r != nil {
					err = cgp.NewWorkerFailure(index, panicError{r})
				}
			}()
			fit := problem.Fitness(out[index].Genotype)
			out[index] = out[index].WithFitness(fit)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// panicError adapts a recovered panic value into an error so it can flow
// through the same WorkerFailure wrapping as an ordinary error.
type panicError struct{ v any }

func (p panicError) Error() string {
	if err, ok := p.v.(error); ok {
		return err.Error()
	}
	return "panic during fitness evaluation"
}
