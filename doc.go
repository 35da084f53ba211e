// Package motifs detects network motifs: connected k-node subgraph patterns
// that occur in a network significantly more (or less) often than chance
// would predict.
//
// 🚀 What is motifs?
//
//	A small, deterministic library that brings together:
//		• core:       the read-only Graph contract plus a compact simple-graph type
//		• esu:        exact enumeration of all connected k-node induced subgraphs
//		• canon:      canonical signatures that collapse isomorphic subgraphs
//		• census:     per-graph frequency tables of motif classes
//		• nullmodel:  randomized reference graphs (edge shuffle / degree-preserving rewire)
//		• motif:      the significance engine producing z-scores and empirical p-values
//		• gonumgraph: adapter for gonum.org/v1/gonum/graph inputs
//
// ✨ Why choose motifs?
//
//   - Exactly-once subgraph enumeration (ESU), verified against brute force
//   - Reproducible by construction: every random draw flows through an explicit seed
//   - No hidden I/O: graphs in, reports out, nothing else
//
// Quick ASCII example:
//
//	    A───B
//	     ╲  │
//	      ╲ │
//	    D───C
//
//	contains one triangle {A,B,C} and two 3-paths ({A,C,D}, {B,C,D}) at k=3.
//
// Entry point for most callers: motif.Evaluate. See each package's doc.go
// for algorithms, options, and error contracts.
//
//	go get github.com/mgab/motifs
package motifs
