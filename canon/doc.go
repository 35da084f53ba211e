// Package canon assigns canonical signatures to small induced subgraphs so
// that two subgraphs share a signature exactly when they are isomorphic.
//
// What
//
//   - Canonicalize(g, nodes) encodes the subgraph induced by nodes as a
//     Signature: motif size, orientation flag, and a relabeling-invariant
//     bit pattern.
//   - Signature values are comparable with ==, totally ordered by Compare,
//     and can be expanded back into a representative core.AdjGraph.
//
// Why
//
//	Counting motif occurrences means collapsing the enumerator's stream
//	into isomorphism classes; an order-comparable signature turns the
//	isomorphism test into map-key equality.
//
// Algorithm
//
//	Brute force over all k! node permutations (Heap's algorithm). Each
//	permutation re-encodes the induced adjacency matrix as a fixed-order
//	bit pattern: row-major upper triangle for undirected graphs, row-major
//	off-diagonal cells for directed graphs. The minimum pattern across all
//	permutations is the signature. Two instances map to the same signature
//	iff a relabeling maps one edge set onto the other; for directed graphs
//	a motif and its edge-reversal stay distinct unless they happen to be
//	isomorphic as digraphs.
//
//	No automorphism pruning is attempted. That caps practical motif size,
//	which is why MaxMotifSize is 8 (k! = 40320 encodings, and the directed
//	bit pattern of 8 nodes is 56 bits, still inside one uint64). This is a
//	performance ceiling, not a correctness limit.
//
// Complexity
//
//   - Time O(k! · k²) per call; memory O(k²).
//
// Usage
//
//	sig, err := canon.Canonicalize(g, []string{"A", "B", "C"})
//	if err != nil { /* ErrGraphNil, ErrBadSubgraphSize, ErrTooLarge, ErrDuplicateNode */ }
//	rep := sig.Representative() // canonical AdjGraph on nodes "0".."k-1"
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrBadSubgraphSize  if fewer than 2 nodes are given.
//   - ErrTooLarge         if more than MaxMotifSize nodes are given.
//   - ErrDuplicateNode    if the node tuple repeats an ID.
//   - core.ErrNodeNotFound (wrapped) if a node is outside the graph.
package canon
