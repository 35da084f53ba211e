// Package esu enumerates all distinct connected k-node induced subgraphs of
// a core.Graph, exactly once each, as a lazy stream.
//
// What
//
//   - Enumerate(g, k) returns an *Enumerator streaming node sets via Next().
//   - Every emitted set has exactly k nodes, induces a connected subgraph
//     (weak connectivity for directed graphs), and is emitted exactly once:
//     no duplicates, no omissions.
//   - Walk(fn) drains the stream through a callback, aborting on its error.
//
// Why
//
//   - Exhaustive connected-subgraph enumeration is the combinatorial core of
//     motif detection; everything downstream (classification, census,
//     significance) consumes this stream.
//
// Algorithm
//
//	ESU (Wernicke, "Efficient Detection of Network Motifs", IEEE/ACM TCBB
//	2006), the enumeration scheme used by FANMOD. Nodes are ranked by
//	sorted ID. Each node v roots one search tree; candidate sets grow only
//	by exclusive neighbors ranked above v, so every connected k-set is
//	reached through exactly one expansion order. The recursion is unrolled
//	into an explicit frame stack: each frame owns its candidate set and its
//	extension slice, so no state is shared across branches.
//
// Determinism
//
//	core.Graph contracts return sorted node and neighbor slices, roots are
//	processed in ascending rank, and extensions are consumed in slice
//	order, so the emission sequence is fully reproducible.
//
// Edge cases
//
//   - k < 2:     ErrBadMotifSize (a single node is not a motif).
//   - k > |V|:   the stream is empty.
//   - k == |V|:  at most one emission (the whole node set, if connected).
//
// Complexity
//
//   - Worst case O(C(V,k) · k · d) time over the whole stream, where d is
//     the maximum degree; memory O(depth · width) for live frames.
//
// Usage
//
//	en, err := esu.Enumerate(g, 3)
//	if err != nil { /* ErrGraphNil, ErrBadMotifSize, ErrOptionViolation */ }
//	for nodes, ok := en.Next(); ok; nodes, ok = en.Next() {
//	    // nodes is a sorted k-set inducing a connected subgraph
//	}
//	if err = en.Err(); err != nil { /* context cancellation */ }
//
// Errors
//
//   - ErrGraphNil       if the graph is nil.
//   - ErrBadMotifSize   if k < 2.
//   - ErrOptionViolation for invalid options.
//   - Enumerator.Err reports context cancellation mid-stream.
package esu
