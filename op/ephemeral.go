package op

import (
	"math/rand"
	"strconv"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cbarrick/cgp/rng"
)

// Ephemeral is a terminal producer that draws a value from a distribution
// once, at instantiation, and freezes it into the resulting Const-like
// operator. Re-evaluating the tree never re-samples, since the frozen value
// is baked into the Operator's eval closure, not recomputed.
type Ephemeral struct {
	// Name labels the distribution for display purposes, e.g. "U(-1,1)".
	Name string
	// Sample draws one value using rng.
	Sample func(rng *rand.Rand) float64
}

// Instantiate draws a value with e.Sample and returns a frozen constant
// operator carrying it.
func (e Ephemeral) Instantiate(rng *rand.Rand) Operator {
	value := e.Sample(rng)
	return Operator{
		Name:  e.Name + "=" + strconv.FormatFloat(value, 'g', -1, 64),
		Arity: 0,
		eval: func(_, _ []float64) float64 {
			return value
		},
	}
}

// UniformEphemeral returns an ephemeral constant uniformly distributed on
// [lo, hi), backed by gonum's distuv.Uniform.
func UniformEphemeral(lo, hi float64) Ephemeral {
	return Ephemeral{
		Name: "U(" + strconv.FormatFloat(lo, 'g', -1, 64) + "," + strconv.FormatFloat(hi, 'g', -1, 64) + ")",
		Sample: func(r *rand.Rand) float64 {
			d := distuv.Uniform{Min: lo, Max: hi, Src: rng.GonumSource(r)}
			return d.Rand()
		},
	}
}

// NormalEphemeral returns an ephemeral constant normally distributed with
// the given mean and standard deviation, backed by gonum's distuv.Normal.
func NormalEphemeral(mu, sigma float64) Ephemeral {
	return Ephemeral{
		Name: "N(" + strconv.FormatFloat(mu, 'g', -1, 64) + "," + strconv.FormatFloat(sigma, 'g', -1, 64) + ")",
		Sample: func(r *rand.Rand) float64 {
			d := distuv.Normal{Mu: mu, Sigma: sigma, Src: rng.GonumSource(r)}
			return d.Rand()
		},
	}
}
