// Package gonumgraph adapts gonum.org/v1/gonum/graph graphs to the
// core.Graph contract, so networks already living in gonum types flow into
// motif analysis without a manual conversion step.
//
// What
//
//   - New(g) wraps any graph.Graph (directed or undirected) in an Adapter
//     implementing core.Graph. Orientation is detected from the value's
//     interfaces: anything satisfying graph.Directed is treated as
//     directed.
//   - Node IDs are rendered as their decimal strings, matching the string
//     IDs used across this module.
//
// Why
//
//	The analysis layers only ever query through core.Graph; one adapter
//	package keeps the gonum dependency at the boundary instead of
//	spreading it through enumeration and classification.
//
// Snapshot semantics
//
//	The node set and edge count are snapshotted at construction; adjacency
//	queries delegate to the wrapped graph live. As everywhere in this
//	module, the underlying graph must not be mutated while an analysis
//	over it is running.
//
// Usage
//
//	sg := simple.NewUndirectedGraph()
//	sg.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(2)})
//	g, err := gonumgraph.New(sg)
//	if err != nil { /* core.ErrGraphNil */ }
//	rep, err := motif.Evaluate(g, 3, motif.WithSeed(1))
//
// Errors
//
//	Query errors reuse core's sentinels (core.ErrEmptyNodeID,
//	core.ErrNodeNotFound); New returns core.ErrGraphNil for nil input.
package gonumgraph
