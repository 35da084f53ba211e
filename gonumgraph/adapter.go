// File: adapter.go
// Role: core.Graph facade over gonum.org/v1/gonum/graph values.
package gonumgraph

import (
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"

	"github.com/mgab/motifs/core"
)

// Adapter implements core.Graph over a wrapped gonum graph.
type Adapter struct {
	g        graph.Graph
	dg       graph.Directed // non-nil iff the wrapped graph is directed
	names    []string       // sorted decimal node IDs
	ids      map[string]int64
	edgeSize int
}

// compile-time contract check
var _ core.Graph = (*Adapter)(nil)

// New wraps g in an Adapter. The node set is snapshotted immediately;
// adjacency queries delegate to g afterwards.
func New(g graph.Graph) (*Adapter, error) {
	if g == nil {
		return nil, core.ErrGraphNil
	}

	a := &Adapter{g: g, ids: make(map[string]int64)}
	if dg, ok := g.(graph.Directed); ok {
		a.dg = dg
	}

	it := g.Nodes()
	for it.Next() {
		id := it.Node().ID()
		name := strconv.FormatInt(id, 10)
		a.ids[name] = id
		a.names = append(a.names, name)
	}
	sort.Strings(a.names)

	// Count edges once: outgoing per node for directed graphs, ordered
	// pairs halved for undirected ones.
	total := 0
	for _, id := range a.ids {
		from := g.From(id)
		for from.Next() {
			total++
		}
	}
	if a.dg == nil {
		total /= 2
	}
	a.edgeSize = total

	return a, nil
}

// Nodes returns all node IDs sorted lexicographically ascending.
func (a *Adapter) Nodes() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)

	return out
}

// Neighbors returns the unique adjacent IDs of id, sorted ascending; for
// directed graphs the union of successors and predecessors.
func (a *Adapter) Neighbors(id string) ([]string, error) {
	nid, err := a.lookup(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{})
	from := a.g.From(nid)
	for from.Next() {
		seen[from.Node().ID()] = struct{}{}
	}
	if a.dg != nil {
		to := a.dg.To(nid)
		for to.Next() {
			seen[to.Node().ID()] = struct{}{}
		}
	}

	nbrs := make([]string, 0, len(seen))
	for n := range seen {
		nbrs = append(nbrs, strconv.FormatInt(n, 10))
	}
	sort.Strings(nbrs)

	return nbrs, nil
}

// HasEdge reports whether u→v exists (u–v when undirected).
func (a *Adapter) HasEdge(u, v string) (bool, error) {
	uid, err := a.lookup(u)
	if err != nil {
		return false, err
	}
	vid, err := a.lookup(v)
	if err != nil {
		return false, err
	}
	if a.dg != nil {
		return a.dg.HasEdgeFromTo(uid, vid), nil
	}

	return a.g.HasEdgeBetween(uid, vid), nil
}

// Degree returns incident edge endpoints of id (in- plus out-degree for
// directed graphs).
func (a *Adapter) Degree(id string) (int, error) {
	nid, err := a.lookup(id)
	if err != nil {
		return 0, err
	}

	d := 0
	from := a.g.From(nid)
	for from.Next() {
		d++
	}
	if a.dg != nil {
		to := a.dg.To(nid)
		for to.Next() {
			d++
		}
	}

	return d, nil
}

// Directed reports whether the wrapped graph carries orientation.
func (a *Adapter) Directed() bool { return a.dg != nil }

// NodeCount returns |V| as of construction.
func (a *Adapter) NodeCount() int { return len(a.names) }

// EdgeCount returns |E| as of construction.
func (a *Adapter) EdgeCount() int { return a.edgeSize }

// lookup resolves a string ID to the wrapped graph's int64 ID.
func (a *Adapter) lookup(id string) (int64, error) {
	if id == "" {
		return 0, core.ErrEmptyNodeID
	}
	nid, ok := a.ids[id]
	if !ok {
		return 0, core.ErrNodeNotFound
	}

	return nid, nil
}
