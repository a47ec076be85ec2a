package alter

import (
	"math/rand"

	"github.com/cbarrick/cgp"
	"github.com/cbarrick/cgp/tree"
)

// SubtreeMutator replaces a randomly chosen subtree of a genotype with a
// freshly generated one, independently for each input phenotype, with
// probability Prob. The replacement is capped to the depth remaining below
// the mutation point and retried against Config's whole-tree size
// predicate, mirroring Generate's own retry loop.
type SubtreeMutator struct {
	Prob   float64
	Config tree.Config
}

// Alter implements cgp.Alterer[tree.Tree].
func (m SubtreeMutator) Alter(parents []cgp.Phenotype[tree.Tree], generation int, rng *rand.Rand) ([]cgp.Phenotype[tree.Tree], int) {
	children := make([]cgp.Phenotype[tree.Tree], len(parents))
	altered := 0
	for i, p := range parents {
		if rng.Float64() >= m.Prob {
			children[i] = p
			continue
		}
		children[i] = cgp.NewPhenotype(m.mutateOnce(p.Genotype, rng), generation)
		altered++
	}
	return children, altered
}

// mutateOnce draws a mutation position and replacement subtree, retrying
// against the global size predicate until one satisfies it or the retry
// budget is exhausted, in which case it panics with a ConfigurationError: an
// unsatisfiable predicate is not a transient failure.
func (m SubtreeMutator) mutateOnce(t tree.Tree, rng *rand.Rand) tree.Tree {
	attempts := m.Config.MaxRetries
	if attempts <= 0 {
		attempts = tree.DefaultMaxRetries
	}

	for i := 0; i < attempts; i++ {
		pos := rng.Intn(t.Size())
		remaining := m.Config.MaxDepth - t.DepthAt(pos)
		if remaining < 0 {
			remaining = 0
		}

		subCfg := tree.Config{
			MaxDepth:        remaining,
			Set:             m.Config.Set,
			GrowProbability: m.Config.GrowProbability,
		}
		replacement, err := tree.Generate(subCfg, rng)
		if err != nil {
			continue
		}

		candidate := t.WithSubtreeAt(pos, replacement.Root)
		if m.Config.Valid == nil || m.Config.Valid(candidate) {
			return candidate
		}
	}

	panic(cgp.NewConfigurationError("subtree mutation: no replacement satisfying the size predicate found", nil))
}
