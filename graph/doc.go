// Package graph implements cgp.GraphMap and its six deterministic
// generators: grid, Erdős–Rényi, Watts–Strogatz, Barabási–Albert, layered
// DAG, and the asymmetric multiple-in/multiple-out hub graph.
//
// Grid computes its fixed adjacency directly. The Erdős–Rényi,
// Watts–Strogatz, Barabási–Albert and layered-DAG generators back their
// adjacency with a gonum.org/v1/gonum/graph/simple.DirectedGraph, used for
// edge-existence checks during construction; the hub generator, which is allowed to
// contain duplicate edges, uses a gonum.org/v1/gonum/graph/multi.DirectedGraph
// instead, since simple graphs silently dedup parallel edges. In both cases
// the neighbor order returned by Map.Neighbors is the order edges were
// decided during generation, not an iteration order read back off gonum's
// internal maps, so a given seed reproduces an identical topology.
package graph
