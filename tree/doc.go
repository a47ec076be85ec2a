// Package tree implements the expression-tree genotype: a rooted tree whose
// nodes carry op.Operator values, a node of arity k has exactly k children
// in fixed order, and trees behave as value types — operations that produce
// a new tree never mutate the nodes of their inputs.
//
// Subtrees may be shared between trees as an implementation detail (e.g. the
// part of a parent untouched by a crossover swap), since nodes are never
// mutated in place; no caller can observe the aliasing.
package tree
