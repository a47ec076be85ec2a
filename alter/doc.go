// Package alter provides genotype alteration operators over expression trees
// — single-node crossover and subtree mutation — plus a Chain combinator that
// threads a population through several alterers in sequence.
//
// These operate on tree.Tree genotypes specifically, since swapping or
// replacing a subtree is a tree operation; the generic machinery in the root
// package only knows phenotypes carry some genotype G.
package alter
