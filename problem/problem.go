// Package problem implements the symbolic-regression Problem: it binds a
// tree genotype to a scalar error via a sample set and the mean-squared-error
// loss.
package problem

import (
	"math/rand"

	"github.com/cbarrick/cgp"
	"github.com/cbarrick/cgp/tree"
)

// Sample is one (inputs -> target) observation the regression must fit.
type Sample struct {
	Inputs []float64
	Target float64
}

// Regression is a symbolic-regression Problem: fitness is the MSE loss of a
// tree's predictions against Samples. It minimizes.
type Regression struct {
	Samples []Sample
	Config  tree.Config
}

// Validate reports a cgp.ConfigurationError if the regression cannot
// generate genotypes: a malformed operator set would otherwise surface as a
// panic the first time a tree is drawn, possibly many generations in.
// cellular.Config.Validate calls this during engine construction.
func (r Regression) Validate() error {
	return r.Config.Set.Validate()
}

// NewGenotype generates a fresh random tree using the configured ramped
// half-and-half generator. A generation failure (the size predicate proved
// unsatisfiable within the retry cap) is an unrecoverable configuration
// error and panics.
func (r Regression) NewGenotype(rng *rand.Rand) tree.Tree {
	t, err := tree.Generate(r.Config, rng)
	if err != nil {
		panic(cgp.NewConfigurationError("problem: cannot generate genotype", err))
	}
	return t
}

// Fitness evaluates t against every sample and returns the mean squared
// error. Any pathological (NaN or infinite) pointwise error makes the whole
// fitness +Inf, so minimization naturally discards it.
func (r Regression) Fitness(t tree.Tree) float64 {
	return MSE(t, r.Samples)
}
