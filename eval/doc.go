// Package eval provides a parallel cgp.Evaluator: a bounded worker pool fills
// in the fitness of every phenotype in a population that lacks one, leaving
// already-evaluated phenotypes untouched.
package eval
