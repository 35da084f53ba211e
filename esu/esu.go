// Package esu enumerates connected k-node induced subgraphs via the ESU
// search scheme, unrolled into an explicit frame stack.
package esu

import (
	"fmt"
	"sort"

	"github.com/mgab/motifs/core"
)

// frame is one pending node of the ESU search tree. Each frame owns its
// slices; branches never share mutable state.
type frame struct {
	sub []int // candidate set, insertion order, ranks
	ext []int // extendable ranks not yet consumed on this branch
}

// Enumerator streams connected k-node sets. It is lazy, finite, and not
// restartable; call Enumerate again for a fresh pass.
type Enumerator struct {
	k     int
	ids   []string // rank → node ID, ascending
	adj   [][]int  // rank → neighbor ranks, ascending
	stack []frame
	opts  Options
	err   error
	done  bool
}

// Enumerate prepares a lazy enumeration of all distinct connected k-node
// induced subgraphs of g. Returns ErrGraphNil, ErrBadMotifSize, or
// ErrOptionViolation for invalid input; graph query failures are wrapped.
// The graph must not be mutated while the stream is live.
func Enumerate(g core.Graph, k int, opts ...Option) (*Enumerator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if k < 2 {
		return nil, fmt.Errorf("%w: got k=%d", ErrBadMotifSize, k)
	}

	// Rank nodes by sorted ID; ESU's exclusion rule needs a total order.
	ids := g.Nodes()
	rank := make(map[string]int, len(ids))
	for i, id := range ids {
		rank[id] = i
	}

	// Snapshot adjacency in rank space once; all subsequent work is on ints.
	adj := make([][]int, len(ids))
	for i, id := range ids {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("esu: neighbors of %q: %w", id, err)
		}
		row := make([]int, 0, len(nbrs))
		for _, nb := range nbrs {
			row = append(row, rank[nb])
		}
		sort.Ints(row)
		adj[i] = row
	}

	en := &Enumerator{k: k, ids: ids, adj: adj, opts: o}

	// Seed one root frame per node, pushed in descending rank so the stack
	// pops roots in ascending order. Extension = neighbors ranked above root.
	for v := len(ids) - 1; v >= 0; v-- {
		ext := make([]int, 0, len(adj[v]))
		for _, u := range adj[v] {
			if u > v {
				ext = append(ext, u)
			}
		}
		en.stack = append(en.stack, frame{sub: []int{v}, ext: ext})
	}

	return en, nil
}

// Next returns the next connected k-node set as sorted node IDs.
// ok is false once the stream is exhausted or cancelled; check Err then.
func (en *Enumerator) Next() ([]string, bool) {
	if en.done {
		return nil, false
	}
	for len(en.stack) > 0 {
		// cancellation check (once per frame pop)
		select {
		case <-en.opts.Ctx.Done():
			en.err = en.opts.Ctx.Err()
			en.done = true

			return nil, false
		default:
		}

		f := en.stack[len(en.stack)-1]
		en.stack = en.stack[:len(en.stack)-1]

		if len(f.sub) == en.k {
			return en.emit(f.sub), true
		}
		en.expand(f)
	}
	en.done = true

	return nil, false
}

// Err reports a mid-stream failure (context cancellation). Valid once Next
// has returned ok == false.
func (en *Enumerator) Err() error { return en.err }

// Walk drains the stream, invoking fn on every emitted set. A non-nil
// error from fn aborts the walk and is returned wrapped.
func (en *Enumerator) Walk(fn func(nodes []string) error) error {
	for nodes, ok := en.Next(); ok; nodes, ok = en.Next() {
		if err := fn(nodes); err != nil {
			en.done = true

			return fmt.Errorf("esu: walk callback: %w", err)
		}
	}

	return en.err
}

// expand pushes one child frame per extension candidate of f.
//
// ESU invariant: a child adds candidate w = f.ext[i]; its extension list is
// the candidates after i (a candidate consumed earlier on this branch is
// never reconsidered) plus w's exclusive neighbors, i.e. neighbors ranked
// above the root that are neither in the candidate set nor adjacent to it.
func (en *Enumerator) expand(f frame) {
	root := f.sub[0]

	// Closed neighborhood of the candidate set: members plus anything
	// adjacent to a member. Exclusive neighbors must avoid this set.
	closed := make(map[int]struct{}, len(f.sub)*4)
	for _, s := range f.sub {
		closed[s] = struct{}{}
		for _, u := range en.adj[s] {
			closed[u] = struct{}{}
		}
	}

	// Push children in reverse so the lowest-ranked extension pops first.
	for i := len(f.ext) - 1; i >= 0; i-- {
		w := f.ext[i]

		sub := make([]int, len(f.sub), len(f.sub)+1)
		copy(sub, f.sub)
		sub = append(sub, w)

		ext := make([]int, 0, len(f.ext)-i-1+len(en.adj[w]))
		ext = append(ext, f.ext[i+1:]...)
		for _, u := range en.adj[w] {
			if u <= root {
				continue
			}
			if _, seen := closed[u]; seen {
				continue
			}
			ext = append(ext, u)
		}

		en.stack = append(en.stack, frame{sub: sub, ext: ext})
	}
}

// emit maps ranks back to IDs, sorted ascending.
func (en *Enumerator) emit(sub []int) []string {
	nodes := make([]string, len(sub))
	for i, v := range sub {
		nodes[i] = en.ids[v]
	}
	sort.Strings(nodes)

	return nodes
}
