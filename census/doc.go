// Package census counts motif-class occurrences in one graph: it drains the
// esu enumeration stream through canon classification into an ordered
// frequency table.
//
// What
//
//   - Count(g, k) returns a *Table mapping canonical Signature → number of
//     connected k-node induced subgraphs of g in that isomorphism class.
//   - Table iteration (Classes, Each) is ordered by canon.Compare, so two
//     equal censuses always present their classes identically.
//
// Why
//
//	The census is the measurement both halves of significance testing
//	share: run once on the real graph, once per randomized ensemble
//	member, then compared class by class.
//
// Determinism
//
//	Counts are independent of enumeration order; ordering of the table is
//	fixed by the signature total order, not by first-seen sequence. The
//	table is backed by a gods treemap keyed by canon.Compare, so ordered
//	reads need no per-call sorting.
//
// Complexity
//
//   - Count: enumeration cost plus O(k! · k²) per emitted subgraph and
//     O(log C) per table update, C = number of distinct classes.
//
// Usage
//
//	tbl, err := census.Count(g, 3)
//	if err != nil { /* esu.ErrGraphNil, esu.ErrBadMotifSize, canon.ErrTooLarge, ... */ }
//	for _, sig := range tbl.Classes() {
//	    fmt.Println(sig, tbl.Get(sig))
//	}
//
// Errors
//
//	Count validates nothing itself beyond k ≤ canon.MaxMotifSize; it
//	surfaces esu and canon sentinels unchanged (errors.Is friendly) and
//	aborts on the first failure rather than returning a partial table.
package census
