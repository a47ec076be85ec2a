package alter

import (
	"math/rand"

	"github.com/cbarrick/cgp"
)

// Chain composes alterers in sequence, threading the population produced by
// one into the next and accumulating their alteration counts. A typical
// pipeline is crossover followed by mutation.
type Chain[G any] struct {
	Alterers []cgp.Alterer[G]
}

// NewChain returns a Chain running the given alterers in order.
func NewChain[G any](alterers ...cgp.Alterer[G]) Chain[G] {
	return Chain[G]{Alterers: alterers}
}

// Alter implements cgp.Alterer[G].
func (c Chain[G]) Alter(parents []cgp.Phenotype[G], generation int, rng *rand.Rand) ([]cgp.Phenotype[G], int) {
	current := parents
	total := 0
	for _, a := range c.Alterers {
		children, altered := a.Alter(current, generation, rng)
		current = children
		total += altered
	}
	return current, total
}
