// Package core defines the Graph contract and the AdjGraph simple graph.
//
// This file declares the Graph interface, sentinel errors, GraphOption,
// and the NewAdjGraph constructor.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates a query or mutation named the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates an attempted self-loop; AdjGraph models
	// simple graphs only.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates an attempted parallel edge.
	ErrDuplicateEdge = errors.New("core: duplicate edge not allowed")

	// ErrGraphNil indicates a nil Graph was handed to a conversion helper.
	ErrGraphNil = errors.New("core: graph is nil")
)

// Graph is the read-only view of a network consumed by the enumeration,
// classification, and significance layers. Implementations must never be
// mutated while an analysis over them is in flight.
type Graph interface {
	// Nodes returns all node IDs, sorted lexicographically ascending.
	Nodes() []string

	// Neighbors returns the unique IDs adjacent to id, sorted ascending.
	// For directed graphs this is the union of in- and out-neighbors.
	// Returns ErrEmptyNodeID or ErrNodeNotFound for invalid queries.
	Neighbors(id string) ([]string, error)

	// HasEdge reports whether the edge u→v exists. Orientation matters
	// iff Directed() is true. Returns ErrEmptyNodeID or ErrNodeNotFound
	// if either endpoint is invalid.
	HasEdge(u, v string) (bool, error)

	// Degree returns the number of edge endpoints incident to id
	// (in-degree plus out-degree for directed graphs).
	// Returns ErrEmptyNodeID or ErrNodeNotFound for invalid queries.
	Degree(id string) (int, error)

	// Directed reports whether edges carry orientation.
	Directed() bool

	// NodeCount returns |V|.
	NodeCount() int

	// EdgeCount returns |E| (each undirected edge counted once).
	EdgeCount() int
}

// GraphOption configures an AdjGraph before construction.
type GraphOption func(g *AdjGraph)

// WithDirected sets edge orientation for the graph
// (true = directed, false = undirected; default undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *AdjGraph) { g.directed = directed }
}

// AdjGraph is an adjacency-set simple graph: no self-loops, no parallel
// edges, optional edge orientation. It implements Graph and additionally
// supports construction (AddNode, AddEdge), cloning, and degree-sequence
// extraction. Not safe for concurrent mutation; safe for concurrent reads
// once construction is complete.
type AdjGraph struct {
	directed bool

	// out[u] holds successors of u; for undirected graphs adjacency is
	// mirrored, so out doubles as the full neighbor set.
	out map[string]map[string]struct{}

	// in[u] holds predecessors of u; nil for undirected graphs.
	in map[string]map[string]struct{}

	edgeCount int
}

// NewAdjGraph creates an empty AdjGraph with the given options.
// Complexity: O(1)
func NewAdjGraph(opts ...GraphOption) *AdjGraph {
	g := &AdjGraph{
		out: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.directed {
		g.in = make(map[string]map[string]struct{})
	}

	return g
}
