// Package cgp implements a cellular genetic programming engine.
//
// A population of tree-shaped genotypes evolves embedded in a directed graph:
// each node of the graph owns one phenotype and only interacts with its graph
// neighbors. Every generation is a pure function from one population to the
// next (see package cellular), so a whole run is deterministic given a seed,
// a topology, and a Problem.
//
// cgp itself holds the types shared by every other package: the generic
// Phenotype and Population, the GraphMap, Problem, Constraint, Selector,
// Alterer and Evaluator contracts, and the Optimize direction. Concrete
// pieces live in subpackages:
//
//	rng       deterministic, splittable random source
//	op        operator and terminal registry
//	tree      the expression-tree genotype
//	problem   symbolic-regression Problem (samples + MSE loss)
//	graph     GraphMap and its generators (grid, BA, WS, ER, layered DAG, hub)
//	sel       tournament selection
//	alter     crossover, mutation, and alterer composition
//	eval      parallel fitness evaluation
//	cellular  the per-generation engine
//	stream    the lazy generation sequence and its combinators
package cgp
