// Package nullmodel generates randomized reference graphs that preserve
// chosen structural invariants of an input network, for use as the null
// distribution in motif significance testing.
//
// What
//
//   - Shuffle(g): same nodes, same edge count; edges re-placed uniformly at
//     random among node pairs (no self-loops, no duplicates).
//   - Rewire(g): same nodes, same per-node degrees (in- and out-degrees for
//     directed graphs); connections randomized by repeated double-edge
//     swaps, the configuration-model mixing used by mfinder.
//   - Both read the input only; the randomized graph is a fresh
//     core.AdjGraph.
//
// Why
//
//	A motif count means nothing in isolation; it is compared against the
//	count distribution over an ensemble of graphs that share the original's
//	coarse structure but none of its specific wiring.
//
// Algorithm (Rewire)
//
//	Pick two edges (a,b) and (c,d) at random, replace them with (a,d) and
//	(c,b) when that introduces no self-loop and no existing edge. Repeat
//	until swapFactor·|E| swaps succeed (default 3·|E|, the mfinder
//	default). If maxAttemptsFactor times that many attempts pass first
//	(default 10×), the graph is too constrained to mix and ErrDegenerate
//	is returned naming the degree-sequence invariant.
//
// Determinism
//
//	All randomness flows through one *rand.Rand. WithSeed(s) makes a run
//	fully reproducible; without an explicit source a fixed DefaultSeed is
//	used, so even "unconfigured" runs repeat exactly. There is no global
//	random state.
//
// Complexity
//
//   - Shuffle: expected O(E) draws on sparse graphs, bounded draws always.
//   - Rewire: O(swapFactor · |E|) successful swaps, attempt-bounded.
//
// Usage
//
//	rg, err := nullmodel.Rewire(g, nullmodel.WithSeed(7))
//	if err != nil { /* ErrGraphNil, ErrDegenerate, ErrOptionViolation */ }
//	// rg.DegreeSequence() equals g's; rg's wiring is randomized.
//
// Errors
//
//   - ErrGraphNil        if the input graph is nil.
//   - ErrDegenerate      if the retry budget expires before the target
//     invariant is satisfiable; the message names the failing invariant.
//   - ErrOptionViolation for invalid options (nil RNG, factor < 1).
package nullmodel
