// File: generate.go
// Role: the two randomization strategies, Shuffle and Rewire.
// Determinism:
//   - All draws flow through Options.Rand; fixed seed ⇒ fixed output.
//   - Node and edge orderings come from core's sorted accessors, so the
//     draw sequence itself is reproducible across runs.
package nullmodel

import (
	"fmt"

	"github.com/mgab/motifs/core"
)

// Shuffle returns a randomized copy of g preserving node count and edge
// count only: the same number of edges is re-placed uniformly at random
// among node pairs, rejecting self-loops and duplicates. Returns
// ErrDegenerate if the draw budget expires first (extremely dense graphs).
func Shuffle(g core.Graph, opts ...Option) (*core.AdjGraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	nodes := g.Nodes()
	out := core.NewAdjGraph(core.WithDirected(g.Directed()))
	for _, id := range nodes {
		if aErr := out.AddNode(id); aErr != nil {
			return nil, fmt.Errorf("nullmodel: shuffle node %q: %w", id, aErr)
		}
	}

	target := g.EdgeCount()
	n := len(nodes)
	if target == 0 {
		return out, nil
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: edge count %d unplaceable on %d node(s)", ErrDegenerate, target, n)
	}

	budget := target * shuffleDrawFactor
	if budget < minShuffleDraws {
		budget = minShuffleDraws
	}

	placed := 0
	for draw := 0; draw < budget && placed < target; draw++ {
		i := o.Rand.Intn(n)
		j := o.Rand.Intn(n)
		if i == j {
			continue
		}
		u, v := nodes[i], nodes[j]
		if !g.Directed() && u > v {
			u, v = v, u // undirected pairs normalized to one orientation
		}
		if has, _ := out.HasEdge(u, v); has {
			continue
		}
		if aErr := out.AddEdge(u, v); aErr != nil {
			return nil, fmt.Errorf("nullmodel: shuffle edge %q→%q: %w", u, v, aErr)
		}
		placed++
	}
	if placed < target {
		return nil, fmt.Errorf("%w: placed %d of %d edges (edge-count invariant)",
			ErrDegenerate, placed, target)
	}

	return out, nil
}

// Rewire returns a randomized copy of g preserving node count, edge count,
// and every node's degree (in- and out-degree for directed graphs). It
// performs SwapFactor·|E| successful double-edge swaps; graphs with fewer
// than two edges are returned as plain copies (their degree sequence
// admits no other wiring). Returns ErrDegenerate if the attempt budget
// expires before the swap target is met.
func Rewire(g core.Graph, opts ...Option) (*core.AdjGraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	out, err := core.FromGraph(g)
	if err != nil {
		return nil, fmt.Errorf("nullmodel: rewire copy: %w", err)
	}

	edges := out.Edges()
	if len(edges) < 2 {
		return out, nil
	}

	swapTarget := o.SwapFactor * len(edges)
	maxAttempts := o.MaxAttemptsFactor * swapTarget

	swaps := 0
	for attempt := 0; attempt < maxAttempts && swaps < swapTarget; attempt++ {
		e1 := o.Rand.Intn(len(edges))
		e2 := o.Rand.Intn(len(edges))
		if e1 == e2 {
			continue
		}
		a, b := edges[e1][0], edges[e1][1]
		c, d := edges[e2][0], edges[e2][1]

		// Proposed replacement: (a,b),(c,d) → (a,d),(c,b).
		if a == d || c == b {
			continue // would create a self-loop
		}
		if has, _ := out.HasEdge(a, d); has {
			continue
		}
		if has, _ := out.HasEdge(c, b); has {
			continue
		}

		if rErr := out.RemoveEdge(a, b); rErr != nil {
			return nil, fmt.Errorf("nullmodel: rewire remove %q→%q: %w", a, b, rErr)
		}
		if rErr := out.RemoveEdge(c, d); rErr != nil {
			return nil, fmt.Errorf("nullmodel: rewire remove %q→%q: %w", c, d, rErr)
		}
		if aErr := out.AddEdge(a, d); aErr != nil {
			return nil, fmt.Errorf("nullmodel: rewire add %q→%q: %w", a, d, aErr)
		}
		if aErr := out.AddEdge(c, b); aErr != nil {
			return nil, fmt.Errorf("nullmodel: rewire add %q→%q: %w", c, b, aErr)
		}

		edges[e1] = [2]string{a, d}
		edges[e2] = [2]string{c, b}
		swaps++
	}
	if swaps < swapTarget {
		return nil, fmt.Errorf("%w: %d of %d swaps after %d attempts (degree-sequence invariant)",
			ErrDegenerate, swaps, swapTarget, maxAttempts)
	}

	return out, nil
}
