// Package census aggregates enumerated subgraphs into per-class counts.
package census

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/mgab/motifs/canon"
	"github.com/mgab/motifs/core"
	"github.com/mgab/motifs/esu"
)

// Option configures a census pass.
type Option func(*Options)

// Options holds parameters customizing a census pass.
type Options struct {
	// Ctx allows cancellation; forwarded to the enumerator.
	Ctx context.Context
}

// DefaultOptions returns Options with context.Background().
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Table maps canonical signatures to occurrence counts for one graph and
// one motif size. Scoped to a single census pass; read-only afterwards.
type Table struct {
	k     int
	total int
	m     *treemap.Map // canon.Signature → int, ordered by canon.Compare
}

// sigComparator adapts canon.Compare to the gods comparator contract.
func sigComparator(a, b interface{}) int {
	return canon.Compare(a.(canon.Signature), b.(canon.Signature))
}

// Count enumerates all connected k-node induced subgraphs of g and tallies
// them per isomorphism class. Surfaces esu and canon sentinels unchanged;
// any failure aborts the pass without returning a partial table.
func Count(g core.Graph, k int, opts ...Option) (*Table, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// canon would reject oversized tuples per emission; reject the pass
	// up front so an empty stream cannot mask a bad k.
	if k > canon.MaxMotifSize {
		return nil, fmt.Errorf("%w: got k=%d, max %d", canon.ErrTooLarge, k, canon.MaxMotifSize)
	}

	en, err := esu.Enumerate(g, k, esu.WithContext(o.Ctx))
	if err != nil {
		return nil, err
	}

	tbl := &Table{k: k, m: treemap.NewWith(sigComparator)}
	walkErr := en.Walk(func(nodes []string) error {
		sig, cErr := canon.Canonicalize(g, nodes)
		if cErr != nil {
			return cErr
		}
		tbl.add(sig)

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return tbl, nil
}

// add increments the count for sig.
func (t *Table) add(sig canon.Signature) {
	count := 0
	if prev, ok := t.m.Get(sig); ok {
		count = prev.(int)
	}
	t.m.Put(sig, count+1)
	t.total++
}

// K returns the motif size this table was computed for.
func (t *Table) K() int { return t.k }

// Total returns the sum of all class counts, which equals the number of
// subgraphs the enumerator emitted.
func (t *Table) Total() int { return t.total }

// Size returns the number of distinct classes observed.
func (t *Table) Size() int { return t.m.Size() }

// Get returns the occurrence count for sig (0 if the class was not seen).
func (t *Table) Get(sig canon.Signature) int {
	if v, ok := t.m.Get(sig); ok {
		return v.(int)
	}

	return 0
}

// Classes returns all observed signatures in canon.Compare order.
func (t *Table) Classes() []canon.Signature {
	keys := t.m.Keys()
	sigs := make([]canon.Signature, len(keys))
	for i, k := range keys {
		sigs[i] = k.(canon.Signature)
	}

	return sigs
}

// Each invokes fn for every (signature, count) pair in canon.Compare order.
func (t *Table) Each(fn func(sig canon.Signature, count int)) {
	t.m.Each(func(key, value interface{}) {
		fn(key.(canon.Signature), value.(int))
	})
}
