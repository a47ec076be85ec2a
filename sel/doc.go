// Package sel provides tournament selection over a sub-population: a small
// Selector taking a slice of competitors and returning winners, built on a
// generic, repeated k-ary draw rather than a fixed binary tournament.
package sel
