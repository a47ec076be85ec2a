// Package cellular implements the per-generation transition of a cellular
// genetic program: evolve(start) -> result. An Engine owns a topology, a
// constraint, a selector, an alterer, an evaluator, and an optimization
// direction; Evolve is a pure function of its EvolutionStart argument plus
// the Engine's seeded rng.Source, regardless of worker count.
package cellular
