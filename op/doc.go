// Package op provides the operator and terminal registry used to build and
// evaluate expression trees.
//
// An Operator is either a named function of fixed arity with a pure
// evaluator, a variable bound to a sample column, or a constant — fixed or
// ephemeral. An ephemeral constant draws a value from a distribution once,
// at terminal creation, and freezes it for the life of the tree.
package op
