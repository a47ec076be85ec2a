package cellular

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/cbarrick/cgp"
	"github.com/cbarrick/cgp/rng"
)

// phase distinguishes the two points in a generation that draw per-cell
// randomness, so each gets its own deterministic sub-stream even though both
// are keyed by the same (generation, cell) pair.
type phase int64

const (
	phaseFilter phase = 0
	phaseEvolve phase = 1
	numPhases         = 2
)

// Engine runs the per-generation transition of a cellular genetic program
// over a fixed Config. It is safe for concurrent use: Evolve holds no
// mutable state across calls beyond the read-only Config and the seeded
// rng.Source, and every per-cell draw is rederived from (seed, generation,
// cell, phase), so results are reproducible regardless of how many calls
// run, in what order, or how many workers each one uses.
type Engine[G any] struct {
	cfg Config[G]
	src rng.Source
}

// New validates cfg and returns an Engine running it.
func New[G any](cfg Config[G]) (*Engine[G], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine[G]{cfg: cfg, src: rng.New(cfg.Seed)}, nil
}

// cellRNG derives the sub-stream for cell i at generation g in the given
// phase. n is folded into the mix so cell 0 of generation 1 never collides
// with cell 0 of generation 0 for a topology of any size.
func (e *Engine[G]) cellRNG(g int, ph phase, i int) *rand.Rand {
	n := int64(e.cfg.Topology.Size())
	index := int64(g)*numPhases*n + int64(ph)*n + int64(i)
	return e.src.Child(index)
}

// Evolve runs one generation transition: filter, evaluate, per-cell evolve,
// evaluate offspring, local elitist replacement. It requires
// len(start.Population) == Config.Topology.Size().
func (e *Engine[G]) Evolve(ctx context.Context, start cgp.EvolutionStart[G]) (cgp.EvolutionResult[G], error) {
	n := e.cfg.Topology.Size()
	if len(start.Population) != n {
		return cgp.EvolutionResult[G]{}, cgp.NewConfigurationError(
			"cellular: population size does not match topology size", nil)
	}
	g := start.Generation

	pf, killCount, invalidCount, err := e.filter(start.Population, g)
	if err != nil {
		return cgp.EvolutionResult[G]{}, err
	}

	pe, err := e.cfg.Evaluator.Eval(ctx, e.cfg.Problem, pf)
	if err != nil {
		return cgp.EvolutionResult[G]{}, err
	}

	candidates, err := e.evolveCells(ctx, pe, g)
	if err != nil {
		return cgp.EvolutionResult[G]{}, err
	}

	c, err := e.cfg.Evaluator.Eval(ctx, e.cfg.Problem, candidates)
	if err != nil {
		return cgp.EvolutionResult[G]{}, err
	}

	next, alterCount := e.replace(pe, c)

	return cgp.EvolutionResult[G]{
		Population:   next,
		Generation:   g + 1,
		KillCount:    killCount,
		InvalidCount: invalidCount,
		AlterCount:   alterCount,
		Optimize:     e.cfg.Optimize,
	}, nil
}

// filter implements step 1: repair invalid phenotypes, kill phenotypes older
// than MaxPhenotypeAge, and pass the rest through unchanged.
func (e *Engine[G]) filter(pop cgp.Population[G], g int) (cgp.Population[G], int, int, error) {
	n := len(pop)
	out := make(cgp.Population[G], n)
	killCount, invalidCount := 0, 0

	for i := 0; i < n; i++ {
		p := pop[i]
		switch {
		case !e.cfg.Constraint.Valid(p):
			repaired, err := refresh(i, func() cgp.Phenotype[G] {
				return e.cfg.Constraint.Repair(p, g, e.cellRNG(g, phaseFilter, i))
			})
			if err != nil {
				return nil, 0, 0, err
			}
			out[i] = repaired
			invalidCount++
		case p.Age(g) > e.cfg.MaxPhenotypeAge:
			fresh, err := refresh(i, func() cgp.Phenotype[G] {
				return cgp.NewPhenotype(e.cfg.Problem.NewGenotype(e.cellRNG(g, phaseFilter, i)), g)
			})
			if err != nil {
				return nil, 0, 0, err
			}
			out[i] = fresh
			killCount++
		default:
			out[i] = p
		}
	}

	return out, killCount, invalidCount, nil
}

// refresh runs fn for cell i, converting a panic (Problem.NewGenotype and
// Constraint.Repair panic when their retry cap is exhausted) into an error
// carrying the cell's index instead of unwinding past Evolve.
func refresh[G any](i int, fn func() cgp.Phenotype[G]) (p cgp.Phenotype[G], err error) {
	defer func() {
		if r := recover(); r != nil {
			err = cgp.NewWorkerFailure(i, recoveredError{r})
		}
	}()
	return fn(), nil
}

// evolveCells implements step 3: for every cell, select two parents from its
// neighborhood in pe, alter them, and keep the first child as the cell's
// candidate. Cells run across a bounded worker pool (Workers == 1 serializes
// them in index order), each writing only its own slot of candidates.
func (e *Engine[G]) evolveCells(ctx context.Context, pe cgp.Population[G], g int) (cgp.Population[G], error) {
	n := len(pe)
	candidates := make(cgp.Population[G], n)

	gr, gCtx := errgroup.WithContext(ctx)
	if e.cfg.Workers > 0 {
		gr.SetLimit(e.cfg.Workers)
	}

	for i := 0; i < n; i++ {
		index := i
		gr.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = cgp.NewWorkerFailure(index, recoveredError{r})
				}
			}()
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
			}

			nbrIDs := e.cfg.Topology.Neighbors(index)
			nbrs := make(cgp.Population[G], len(nbrIDs))
			for k, id := range nbrIDs {
				nbrs[k] = pe[id]
			}
			if len(nbrs) == 0 {
				nbrs = cgp.Population[G]{pe[index]}
			}

			cellRNG := e.cellRNG(g, phaseEvolve, index)
			parents := e.cfg.Selector.Select(nbrs, 2, e.cfg.Optimize, cellRNG)
			children, _ := e.cfg.Alterer.Alter(parents, g, cellRNG)
			candidates[index] = children[0]
			return nil
		})
	}

	if err := gr.Wait(); err != nil {
		return nil, err
	}
	return candidates, nil
}

// replace implements step 5: a candidate replaces its cell only if it
// strictly beats the cell's current (post-filter, post-evaluate) phenotype;
// ties keep the parent.
func (e *Engine[G]) replace(pe, c cgp.Population[G]) (cgp.Population[G], int) {
	n := len(pe)
	out := make(cgp.Population[G], n)
	alterCount := 0

	for i := 0; i < n; i++ {
		candidateFit, _ := c[i].Fitness()
		currentFit, _ := pe[i].Fitness()
		// A NaN or infinite score is a pathological evaluation; clamp it to
		// the direction's worst value so it can never win the slot.
		candidateFit = e.cfg.Optimize.Normalize(candidateFit)
		currentFit = e.cfg.Optimize.Normalize(currentFit)
		if e.cfg.Optimize.Better(candidateFit, currentFit) {
			out[i] = c[i]
			alterCount++
		} else {
			out[i] = pe[i]
		}
	}

	return out, alterCount
}

// recoveredError adapts a recovered panic value into an error.
type recoveredError struct{ v any }

func (r recoveredError) Error() string {
	if err, ok := r.v.(error); ok {
		return err.Error()
	}
	return "panic during cell evolution"
}
