// File: convert.go
// Role: materialize any read-only Graph into a concrete AdjGraph.
package core

import "fmt"

// FromGraph copies an arbitrary Graph implementation into a fresh AdjGraph
// with the same nodes, edges, and orientation. The input is only read.
// Complexity: O(V·d) neighbor scans plus O(E) inserts.
func FromGraph(g Graph) (*AdjGraph, error) {
	if g == nil {
		return nil, fmt.Errorf("core: FromGraph: %w", ErrGraphNil)
	}
	out := NewAdjGraph(WithDirected(g.Directed()))

	for _, id := range g.Nodes() {
		if err := out.AddNode(id); err != nil {
			return nil, fmt.Errorf("core: FromGraph node %q: %w", id, err)
		}
	}
	for _, u := range g.Nodes() {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("core: FromGraph neighbors of %q: %w", u, err)
		}
		for _, v := range nbrs {
			if !g.Directed() {
				if u > v {
					continue // each undirected edge copied once
				}
				if err = out.AddEdge(u, v); err != nil {
					return nil, fmt.Errorf("core: FromGraph edge %q–%q: %w", u, v, err)
				}

				continue
			}
			// Directed: Neighbors merges both orientations; keep only
			// the ones that really exist as u→v.
			has, hErr := g.HasEdge(u, v)
			if hErr != nil {
				return nil, fmt.Errorf("core: FromGraph edge query %q→%q: %w", u, v, hErr)
			}
			if has {
				if err = out.AddEdge(u, v); err != nil {
					return nil, fmt.Errorf("core: FromGraph edge %q→%q: %w", u, v, err)
				}
			}
		}
	}

	return out, nil
}
