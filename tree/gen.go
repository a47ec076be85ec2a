package tree

import (
	"fmt"
	"math/rand"

	"github.com/cbarrick/cgp/op"
)

// DefaultMaxRetries is the number of times Generate will discard and retry
// a tree that fails its size predicate before giving up.
const DefaultMaxRetries = 100

// Config parameterizes ramped half-and-half tree generation: a max depth, an
// operator/terminal set, the growth bias, and the size-validity predicate
// that makes a tree a legal genotype.
type Config struct {
	// MaxDepth caps the depth of generated trees.
	MaxDepth int
	// Set is the operator and terminal set trees are built from.
	Set op.Set
	// GrowProbability is the chance, at any node shallower than MaxDepth, of
	// choosing a terminal instead of recursing into a function. 0
	// approximates the "full" method (functions until MaxDepth); higher
	// values approximate "grow" (bushy, uneven trees).
	GrowProbability float64
	// Valid is the size predicate P; nil accepts every tree.
	Valid func(Tree) bool
	// MaxRetries overrides DefaultMaxRetries when positive.
	MaxRetries int
}

func (c Config) valid(t Tree) bool {
	if c.Valid == nil {
		return true
	}
	return c.Valid(t)
}

func (c Config) retries() int {
	if c.MaxRetries > 0 {
		return c.MaxRetries
	}
	return DefaultMaxRetries
}

// Generate produces a tree with depth <= cfg.MaxDepth satisfying
// cfg.Valid, retrying up to cfg.MaxRetries times before returning an error.
func Generate(cfg Config, rng *rand.Rand) (Tree, error) {
	attempts := cfg.retries()
	for i := 0; i < attempts; i++ {
		t := Tree{Root: grow(cfg, 0, rng)}
		if cfg.valid(t) {
			return t, nil
		}
	}
	return Tree{}, fmt.Errorf("tree: no tree satisfying the size predicate found in %d attempts", attempts)
}

// grow recurses: at max depth, or when the biased coin chooses "terminal",
// draw a terminal; otherwise draw a function and recurse for each child.
func grow(cfg Config, depth int, rng *rand.Rand) *Node {
	pickTerminal := depth >= cfg.MaxDepth ||
		len(cfg.Set.Functions) == 0 ||
		rng.Float64() < cfg.GrowProbability

	if pickTerminal {
		return &Node{Op: cfg.Set.RandomTerminal(rng)}
	}

	fn := cfg.Set.RandomFunction(rng)
	children := make([]*Node, fn.Arity)
	for i := range children {
		children[i] = grow(cfg, depth+1, rng)
	}
	return &Node{Op: fn, Children: children}
}
