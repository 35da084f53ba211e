// File: pattern.go
// Role: subgraph-isomorphism search for a fixed pattern topology.
package motif

import (
	"fmt"

	"github.com/mgab/motifs/canon"
	"github.com/mgab/motifs/core"
	"github.com/mgab/motifs/esu"
)

// FindPattern returns every node set of g whose induced subgraph is
// isomorphic to pattern, in deterministic enumeration order. Graph and
// pattern must agree on directedness (ErrPatternMismatch otherwise).
// Only connected patterns can match: enumeration emits connected
// subgraphs exclusively, so a disconnected pattern yields no hits.
func FindPattern(g core.Graph, pattern core.Graph, opts ...Option) ([][]string, error) {
	if g == nil || pattern == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if g.Directed() != pattern.Directed() {
		return nil, fmt.Errorf("%w: graph directed=%t, pattern directed=%t",
			ErrPatternMismatch, g.Directed(), pattern.Directed())
	}

	// Canonicalizing the pattern also validates its size (2..MaxMotifSize).
	want, err := canon.Canonicalize(pattern, pattern.Nodes())
	if err != nil {
		return nil, fmt.Errorf("motif: pattern signature: %w", err)
	}

	en, err := esu.Enumerate(g, pattern.NodeCount(), esu.WithContext(o.Ctx))
	if err != nil {
		return nil, fmt.Errorf("motif: pattern enumeration: %w", err)
	}

	var hits [][]string
	err = en.Walk(func(nodes []string) error {
		sig, cErr := canon.Canonicalize(g, nodes)
		if cErr != nil {
			return cErr
		}
		if sig == want {
			set := make([]string, len(nodes))
			copy(set, nodes)
			hits = append(hits, set)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return hits, nil
}
