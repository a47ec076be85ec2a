// Package stream provides a lazy generation-by-generation driver over any
// per-generation evolve step, plus combinators built on it: Limit,
// LimitByFitnessThreshold, ToBestEvolutionResult, ToBestPhenotype, and
// start-population normalization.
package stream
