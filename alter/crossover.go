package alter

import (
	"fmt"
	"math/rand"

	"github.com/cbarrick/cgp"
	"github.com/cbarrick/cgp/tree"
)

// SingleNodeCrossover swaps a randomly chosen subtree between two parents
// with probability Prob, producing two children; otherwise the parents pass
// through unchanged.
type SingleNodeCrossover struct {
	Prob float64
}

// Alter implements cgp.Alterer[tree.Tree]. It requires exactly two parents.
func (c SingleNodeCrossover) Alter(parents []cgp.Phenotype[tree.Tree], generation int, rng *rand.Rand) ([]cgp.Phenotype[tree.Tree], int) {
	if len(parents) != 2 {
		panic(fmt.Sprintf("alter: SingleNodeCrossover requires exactly 2 parents, got %d", len(parents)))
	}
	p0, p1 := parents[0], parents[1]

	if rng.Float64() >= c.Prob {
		return []cgp.Phenotype[tree.Tree]{p0, p1}, 0
	}

	t0, t1 := p0.Genotype, p1.Genotype
	pos0 := rng.Intn(t0.Size())
	pos1 := rng.Intn(t1.Size())
	sub0 := t0.SubtreeAt(pos0)
	sub1 := t1.SubtreeAt(pos1)

	child0 := cgp.NewPhenotype(t0.WithSubtreeAt(pos0, sub1), generation)
	child1 := cgp.NewPhenotype(t1.WithSubtreeAt(pos1, sub0), generation)

	return []cgp.Phenotype[tree.Tree]{child0, child1}, 2
}
