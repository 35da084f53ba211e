// File: adjgraph.go
// Role: AdjGraph construction, query, and clone methods.
// Determinism:
//   - Nodes() and Neighbors() return IDs sorted lex asc.
//   - Edges() returns pairs sorted lex asc by (first, second) endpoint.
//   - DegreeSequence() returns degrees sorted asc.
package core

import "sort"

// AddNode inserts a node with the given ID. Inserting an existing node is a
// no-op. Returns ErrEmptyNodeID for the empty string.
// Complexity: O(1)
func (g *AdjGraph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, ok := g.out[id]; !ok {
		g.out[id] = make(map[string]struct{})
		if g.directed {
			g.in[id] = make(map[string]struct{})
		}
	}

	return nil
}

// AddEdge inserts the edge u→v (u–v when undirected), creating missing
// endpoints implicitly. Self-loops and duplicate edges are rejected.
// For undirected graphs, u–v and v–u are the same edge.
// Complexity: O(1)
func (g *AdjGraph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyNodeID
	}
	if u == v {
		return ErrLoopNotAllowed
	}
	if err := g.AddNode(u); err != nil {
		return err
	}
	if err := g.AddNode(v); err != nil {
		return err
	}
	if _, dup := g.out[u][v]; dup {
		return ErrDuplicateEdge
	}

	g.out[u][v] = struct{}{}
	if g.directed {
		g.in[v][u] = struct{}{}
	} else {
		g.out[v][u] = struct{}{}
	}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the edge u→v (u–v when undirected). Removing an
// absent edge between existing nodes is a no-op; absent endpoints return
// ErrNodeNotFound.
// Complexity: O(1)
func (g *AdjGraph) RemoveEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyNodeID
	}
	if _, ok := g.out[u]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := g.out[v]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := g.out[u][v]; !ok {
		return nil
	}

	delete(g.out[u], v)
	if g.directed {
		delete(g.in[v], u)
	} else {
		delete(g.out[v], u)
	}
	g.edgeCount--

	return nil
}

// Nodes returns all node IDs sorted lexicographically ascending.
// Complexity: O(V log V)
func (g *AdjGraph) Nodes() []string {
	ids := make([]string, 0, len(g.out))
	for id := range g.out {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Neighbors returns the unique adjacent IDs of id, sorted ascending.
// For directed graphs the result is the union of in- and out-neighbors.
func (g *AdjGraph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	succ, ok := g.out[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	if !g.directed {
		nbrs := make([]string, 0, len(succ))
		for v := range succ {
			nbrs = append(nbrs, v)
		}
		sort.Strings(nbrs)

		return nbrs, nil
	}

	// Directed: merge successors and predecessors, deduplicated.
	seen := make(map[string]struct{}, len(succ)+len(g.in[id]))
	for v := range succ {
		seen[v] = struct{}{}
	}
	for v := range g.in[id] {
		seen[v] = struct{}{}
	}
	nbrs := make([]string, 0, len(seen))
	for v := range seen {
		nbrs = append(nbrs, v)
	}
	sort.Strings(nbrs)

	return nbrs, nil
}

// HasEdge reports whether the edge u→v exists (u–v when undirected).
func (g *AdjGraph) HasEdge(u, v string) (bool, error) {
	if u == "" || v == "" {
		return false, ErrEmptyNodeID
	}
	if _, ok := g.out[u]; !ok {
		return false, ErrNodeNotFound
	}
	if _, ok := g.out[v]; !ok {
		return false, ErrNodeNotFound
	}
	_, present := g.out[u][v]

	return present, nil
}

// Degree returns the number of edge endpoints incident to id
// (in-degree plus out-degree for directed graphs).
func (g *AdjGraph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyNodeID
	}
	succ, ok := g.out[id]
	if !ok {
		return 0, ErrNodeNotFound
	}
	if !g.directed {
		return len(succ), nil
	}

	return len(succ) + len(g.in[id]), nil
}

// Directed reports whether edges carry orientation.
func (g *AdjGraph) Directed() bool { return g.directed }

// NodeCount returns |V|.
func (g *AdjGraph) NodeCount() int { return len(g.out) }

// EdgeCount returns |E|, counting each undirected edge once.
func (g *AdjGraph) EdgeCount() int { return g.edgeCount }

// Edges returns every edge as a [from, to] pair, sorted ascending by
// (from, to). Undirected edges appear exactly once with from < to.
// Complexity: O(E log E)
func (g *AdjGraph) Edges() [][2]string {
	pairs := make([][2]string, 0, g.edgeCount)
	for u, succ := range g.out {
		for v := range succ {
			if !g.directed && u > v {
				continue // undirected edge emitted from its smaller endpoint
			}
			pairs = append(pairs, [2]string{u, v})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}

		return pairs[i][1] < pairs[j][1]
	})

	return pairs
}

// Clone returns a deep copy sharing no storage with g.
// Complexity: O(V + E)
func (g *AdjGraph) Clone() *AdjGraph {
	c := NewAdjGraph(WithDirected(g.directed))
	for id := range g.out {
		_ = c.AddNode(id) // id came from g, cannot be empty
	}
	for u, succ := range g.out {
		for v := range succ {
			if !g.directed && u > v {
				continue
			}
			_ = c.AddEdge(u, v) // same validation already passed in g
		}
	}

	return c
}

// DegreeSequence returns all node degrees sorted ascending. Two graphs with
// equal degree sequences are degree-indistinguishable, which is the
// invariant the degree-preserving null model maintains.
// Complexity: O(V log V)
func (g *AdjGraph) DegreeSequence() []int {
	seq := make([]int, 0, len(g.out))
	for id := range g.out {
		d := len(g.out[id])
		if g.directed {
			d += len(g.in[id])
		}
		seq = append(seq, d)
	}
	sort.Ints(seq)

	return seq
}

// OutDegree returns the out-degree of id (equal to Degree for undirected
// graphs).
func (g *AdjGraph) OutDegree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyNodeID
	}
	succ, ok := g.out[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(succ), nil
}

// InDegree returns the in-degree of id (equal to Degree for undirected
// graphs).
func (g *AdjGraph) InDegree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyNodeID
	}
	if _, ok := g.out[id]; !ok {
		return 0, ErrNodeNotFound
	}
	if !g.directed {
		return len(g.out[id]), nil
	}

	return len(g.in[id]), nil
}
