// Package motif runs the full significance pipeline: census the real graph,
// census an ensemble of randomized null-model graphs, and score every motif
// class by how far its real count sits from the null distribution.
//
// What
//
//   - Evaluate(g, k) returns a *Report with one ClassStat per isomorphism
//     class observed in the real graph: real count, null mean, null
//     standard deviation (population), z-score, and an empirical p-value.
//   - Classes absent from a randomized member contribute a count of 0 to
//     that member's statistics; they are never skipped.
//   - A zero-variance null distribution yields ZDefined == false instead
//     of a fabricated number; the Z field is NaN in that case and must not
//     be read without checking the flag.
//   - FindPattern(g, pattern) lists every node set of g inducing a
//     subgraph isomorphic to the given pattern graph.
//
// Why
//
//	Raw motif counts scale with density and degree; only the comparison
//	against degree-matched (or edge-count-matched) randomizations says
//	whether a pattern is over- or under-represented.
//
// Statistics
//
//	mean and standard deviation come from gonum's stat.Mean and
//	stat.PopStdDev over the per-class sample vector (one sample per
//	ensemble member). z = (real − mean) / std when std > 0. The p-value is
//	the fraction of members whose count reaches the real count
//	(enrichment, one-sided), the measure used by mfinder.
//
// Determinism
//
//	One base RNG (WithSeed / WithRand, DefaultSeed otherwise) deals a
//	derived seed to every ensemble member up front, so reports are
//	identical across runs with the same seed — including parallel runs:
//	WithWorkers(n) distributes members across goroutines without touching
//	the seed schedule or the fold order.
//
// Usage
//
//	rep, err := motif.Evaluate(g, 3,
//	    motif.WithEnsembleSize(500),
//	    motif.WithSeed(42),
//	)
//	if err != nil { /* ErrGraphNil, ErrBadEnsembleSize, ErrOptionViolation, wrapped census/nullmodel errors */ }
//	for _, cs := range rep.Classes {
//	    if cs.ZDefined {
//	        fmt.Println(cs.Signature, cs.RealCount, cs.Z)
//	    }
//	}
//
// Options
//
//   - WithEnsembleSize(n):  number of randomized graphs (default 100).
//   - WithSeed(s) / WithRand(r): reproducible randomness (default seed 1).
//   - WithEdgeShuffle():    preserve edge count only; default preserves
//     the full degree sequence (nullmodel.Rewire).
//   - WithMinCount(n):      drop classes with real count < n (default 1).
//   - WithWorkers(n):       process ensemble members on n goroutines.
//   - WithContext(ctx):     cancellation; aborts the whole call.
//
// Errors
//
//	Any enumeration, classification, or null-model failure aborts the
//	whole Evaluate call; per-class statistics require a complete,
//	consistent ensemble, so there are no partial reports.
package motif
