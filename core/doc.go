// Package core defines the read-only Graph contract consumed by every other
// package in this module, plus AdjGraph, a compact simple-graph
// implementation of that contract.
//
// What
//
//   - Graph: the minimal capability interface a network must satisfy to be
//     analyzed (node listing, adjacency query, edge query, degree query).
//   - AdjGraph: an adjacency-set simple graph (directed or undirected,
//     no self-loops, no parallel edges) used as the reference
//     implementation, as the output type of nullmodel generators, and as
//     the workhorse of tests.
//
// Why
//
//   - Motif analysis never mutates its input; an explicit read-only
//     contract makes that ownership rule enforceable at the type level.
//   - Any concrete representation (adjacency list, matrix, a gonum graph
//     behind the gonumgraph adapter) plugs in by implementing four queries.
//
// Determinism
//
//	Nodes(), Neighbors(), and Edges() return lexicographically sorted
//	slices, so every traversal in this module visits the graph in a fully
//	reproducible order.
//
// Directed graphs
//
//	HasEdge(u, v) is orientation-sensitive when Directed() is true.
//	Neighbors(id) always returns the union of in- and out-neighbors:
//	subgraph connectivity in this module is weak connectivity, which is
//	what the enumeration layer requires.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - HasEdge, Degree: O(1) map lookups after an O(1) existence check.
//   - Nodes, Neighbors: O(n log n) in the size of the returned slice.
//   - Clone: O(V + E).
//
// Errors
//
//   - ErrEmptyNodeID   if a query or mutation names the empty string.
//   - ErrNodeNotFound  if a query names a node outside the graph.
//   - ErrLoopNotAllowed    if AddEdge(u, u) is attempted.
//   - ErrDuplicateEdge     if AddEdge repeats an existing edge.
package core
