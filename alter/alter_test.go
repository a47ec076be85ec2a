package alter_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cbarrick/cgp"
	"github.com/cbarrick/cgp/alter"
	"github.com/cbarrick/cgp/op"
	"github.com/cbarrick/cgp/tree"
)

func testSet() op.Set {
	return op.Set{
		Functions: op.Arithmetic(),
		Terminals: []op.Terminal{
			op.AsTerminal(op.Variable(0)),
			op.AsTerminal(op.Const(1)),
		},
	}
}

func testConfig() tree.Config {
	return tree.Config{MaxDepth: 3, Set: testSet(), GrowProbability: 0.2}
}

func mustGenerate(t *testing.T, cfg tree.Config, rng *rand.Rand) tree.Tree {
	t.Helper()
	tr, err := tree.Generate(cfg, rng)
	assert.NoError(t, err)
	return tr
}

func TestSingleNodeCrossoverAlwaysSwaps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cfg := testConfig()
	p0 := cgp.NewPhenotype(mustGenerate(t, cfg, rng), 0).WithFitness(1)
	p1 := cgp.NewPhenotype(mustGenerate(t, cfg, rng), 0).WithFitness(2)

	c := alter.SingleNodeCrossover{Prob: 1}
	children, altered := c.Alter([]cgp.Phenotype[tree.Tree]{p0, p1}, 5, rng)

	assert.Equal(t, 2, altered)
	assert.Len(t, children, 2)
	for _, child := range children {
		_, has := child.Fitness()
		assert.False(t, has)
		assert.Equal(t, 5, child.Generation)
	}
}

func TestSingleNodeCrossoverNeverSwaps(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	cfg := testConfig()
	p0 := cgp.NewPhenotype(mustGenerate(t, cfg, rng), 0).WithFitness(1)
	p1 := cgp.NewPhenotype(mustGenerate(t, cfg, rng), 0).WithFitness(2)

	c := alter.SingleNodeCrossover{Prob: 0}
	children, altered := c.Alter([]cgp.Phenotype[tree.Tree]{p0, p1}, 5, rng)

	assert.Equal(t, 0, altered)
	assert.Equal(t, p0.Genotype.String(), children[0].Genotype.String())
	assert.Equal(t, p1.Genotype.String(), children[1].Genotype.String())
	f0, has0 := children[0].Fitness()
	assert.True(t, has0)
	assert.Equal(t, 1.0, f0)
}

func TestSingleNodeCrossoverRequiresTwoParents(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	cfg := testConfig()
	p0 := cgp.NewPhenotype(mustGenerate(t, cfg, rng), 0)
	c := alter.SingleNodeCrossover{Prob: 1}
	assert.Panics(t, func() {
		c.Alter([]cgp.Phenotype[tree.Tree]{p0}, 0, rng)
	})
}

func TestSubtreeMutatorAlwaysMutates(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	cfg := testConfig()
	p0 := cgp.NewPhenotype(mustGenerate(t, cfg, rng), 0).WithFitness(1)
	p1 := cgp.NewPhenotype(mustGenerate(t, cfg, rng), 0).WithFitness(2)

	m := alter.SubtreeMutator{Prob: 1, Config: cfg}
	children, altered := m.Alter([]cgp.Phenotype[tree.Tree]{p0, p1}, 7, rng)

	assert.Equal(t, 2, altered)
	for i, child := range children {
		_, has := child.Fitness()
		assert.False(t, has)
		assert.Equal(t, 7, child.Generation)
		assert.LessOrEqual(t, child.Genotype.Depth(), cfg.MaxDepth)
		_ = i
	}
}

func TestSubtreeMutatorNeverMutates(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	cfg := testConfig()
	p0 := cgp.NewPhenotype(mustGenerate(t, cfg, rng), 0).WithFitness(9)

	m := alter.SubtreeMutator{Prob: 0, Config: cfg}
	children, altered := m.Alter([]cgp.Phenotype[tree.Tree]{p0}, 1, rng)

	assert.Equal(t, 0, altered)
	f, has := children[0].Fitness()
	assert.True(t, has)
	assert.Equal(t, 9.0, f)
}

func TestSubtreeMutatorRespectsSizePredicate(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	cfg := testConfig()
	cfg.Valid = func(tr tree.Tree) bool { return tr.Size() <= 30 }
	p0 := cgp.NewPhenotype(mustGenerate(t, cfg, rng), 0)

	m := alter.SubtreeMutator{Prob: 1, Config: cfg}
	children, altered := m.Alter([]cgp.Phenotype[tree.Tree]{p0}, 2, rng)

	assert.Equal(t, 1, altered)
	assert.LessOrEqual(t, children[0].Genotype.Size(), 30)
}

func TestSubtreeMutatorPanicsOnUnsatisfiablePredicate(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cfg := testConfig()
	p0 := cgp.NewPhenotype(mustGenerate(t, cfg, rng), 0)

	impossible := cfg
	impossible.Valid = func(tree.Tree) bool { return false }
	impossible.MaxRetries = 3

	m := alter.SubtreeMutator{Prob: 1, Config: impossible}
	assert.Panics(t, func() {
		m.Alter([]cgp.Phenotype[tree.Tree]{p0}, 0, rng)
	})
}

func TestChainAccumulatesAlterations(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	cfg := testConfig()
	p0 := cgp.NewPhenotype(mustGenerate(t, cfg, rng), 0).WithFitness(1)
	p1 := cgp.NewPhenotype(mustGenerate(t, cfg, rng), 0).WithFitness(2)

	chain := alter.NewChain[tree.Tree](
		alter.SingleNodeCrossover{Prob: 1},
		alter.SubtreeMutator{Prob: 1, Config: cfg},
	)

	children, altered := chain.Alter([]cgp.Phenotype[tree.Tree]{p0, p1}, 3, rng)

	assert.Equal(t, 4, altered)
	assert.Len(t, children, 2)
	for _, child := range children {
		_, has := child.Fitness()
		assert.False(t, has)
	}
}

func TestChainEmptyIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	cfg := testConfig()
	p0 := cgp.NewPhenotype(mustGenerate(t, cfg, rng), 0).WithFitness(4)

	chain := alter.NewChain[tree.Tree]()
	children, altered := chain.Alter([]cgp.Phenotype[tree.Tree]{p0}, 0, rng)

	assert.Equal(t, 0, altered)
	assert.Equal(t, p0, children[0])
}
