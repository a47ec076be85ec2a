package cellular

import (
	"runtime"

	"github.com/cbarrick/cgp"
)

// DefaultMaxPhenotypeAge is the generation-count threshold past which a
// phenotype is killed and replaced by a fresh random genotype.
const DefaultMaxPhenotypeAge = 70

// Config is the build-time configuration of an Engine: the topology and
// collaborators it runs, plus tunables with package defaults. It is built
// with NewConfig and a chain of Options.
type Config[G any] struct {
	Topology        cgp.GraphMap
	Problem         cgp.Problem[G]
	Selector        cgp.Selector[G]
	Alterer         cgp.Alterer[G]
	Evaluator       cgp.Evaluator[G]
	Constraint      cgp.Constraint[G]
	Optimize        cgp.Optimize
	MaxPhenotypeAge int
	Workers         int
	Seed            int64
}

// Option mutates a Config during construction.
type Option[G any] func(*Config[G])

// WithConstraint overrides the default retry-on-invalid constraint.
func WithConstraint[G any](c cgp.Constraint[G]) Option[G] {
	return func(cfg *Config[G]) { cfg.Constraint = c }
}

// WithMaxPhenotypeAge overrides DefaultMaxPhenotypeAge.
func WithMaxPhenotypeAge[G any](age int) Option[G] {
	return func(cfg *Config[G]) { cfg.MaxPhenotypeAge = age }
}

// WithWorkers overrides the default worker pool size of the per-cell
// evolution step. A value of 1 evolves one cell at a time, in index order.
// Fitness evaluation is bounded separately, by the Evaluator.
func WithWorkers[G any](workers int) Option[G] {
	return func(cfg *Config[G]) { cfg.Workers = workers }
}

// WithSeed overrides the engine's root RNG seed.
func WithSeed[G any](seed int64) Option[G] {
	return func(cfg *Config[G]) { cfg.Seed = seed }
}

// NewConfig builds a Config from its required collaborators, applying
// defaults (DefaultMaxPhenotypeAge, a system-sized worker pool, and a
// retry constraint over problem) before applying opts in order.
func NewConfig[G any](
	topology cgp.GraphMap,
	problem cgp.Problem[G],
	selector cgp.Selector[G],
	alterer cgp.Alterer[G],
	evaluator cgp.Evaluator[G],
	optimize cgp.Optimize,
	opts ...Option[G],
) Config[G] {
	cfg := Config[G]{
		Topology:        topology,
		Problem:         problem,
		Selector:        selector,
		Alterer:         alterer,
		Evaluator:       evaluator,
		Optimize:        optimize,
		MaxPhenotypeAge: DefaultMaxPhenotypeAge,
		Workers:         runtime.GOMAXPROCS(0),
	}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.Constraint == nil {
		cfg.Constraint = cgp.RetryConstraint[G](problem)
	}
	return cfg
}

// Validate reports a ConfigurationError describing the first malformed field
// found, or nil if cfg can build a working Engine.
func (cfg Config[G]) Validate() error {
	if cfg.Topology == nil {
		return cgp.NewConfigurationError("cellular: topology is required", nil)
	}
	if cfg.Topology.Size() <= 0 {
		return cgp.NewConfigurationError("cellular: topology must have a positive size", nil)
	}
	if cfg.Problem == nil {
		return cgp.NewConfigurationError("cellular: problem is required", nil)
	}
	// A Problem that can check its own configuration (e.g. problem.Regression
	// validating its operator set) gets to fail engine construction instead
	// of panicking mid-run.
	if v, ok := cfg.Problem.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	if cfg.Selector == nil {
		return cgp.NewConfigurationError("cellular: selector is required", nil)
	}
	if cfg.Alterer == nil {
		return cgp.NewConfigurationError("cellular: alterer is required", nil)
	}
	if cfg.Evaluator == nil {
		return cgp.NewConfigurationError("cellular: evaluator is required", nil)
	}
	if cfg.MaxPhenotypeAge < 0 {
		return cgp.NewConfigurationError("cellular: maxPhenotypeAge must be non-negative", nil)
	}
	return nil
}
