package nullmodel_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgab/motifs/core"
	"github.com/mgab/motifs/nullmodel"
)

// buildWheel creates hub H joined to an n-cycle R0..R(n-1).
func buildWheel(n int) *core.AdjGraph {
	g := core.NewAdjGraph()
	for i := 0; i < n; i++ {
		g.AddEdge("H", "R"+strconv.Itoa(i))
		g.AddEdge("R"+strconv.Itoa(i), "R"+strconv.Itoa((i+1)%n))
	}

	return g
}

// buildDirectedCycle creates N0→N1→…→N(n-1)→N0.
func buildDirectedCycle(n int) *core.AdjGraph {
	g := core.NewAdjGraph(core.WithDirected(true))
	for i := 0; i < n; i++ {
		g.AddEdge("N"+strconv.Itoa(i), "N"+strconv.Itoa((i+1)%n))
	}

	return g
}

// edgeSet keys a graph's edges for set comparison.
func edgeSet(g *core.AdjGraph) map[[2]string]bool {
	set := make(map[[2]string]bool, g.EdgeCount())
	for _, e := range g.Edges() {
		set[e] = true
	}

	return set
}

func TestGenerate_OptionErrors(t *testing.T) {
	g := buildWheel(5)

	if _, err := nullmodel.Shuffle(nil); !errors.Is(err, nullmodel.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if _, err := nullmodel.Rewire(nil); !errors.Is(err, nullmodel.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if _, err := nullmodel.Shuffle(g, nullmodel.WithRand(nil)); !errors.Is(err, nullmodel.ErrOptionViolation) {
		t.Errorf("nil RNG: want ErrOptionViolation, got %v", err)
	}
	if _, err := nullmodel.Rewire(g, nullmodel.WithSwapFactor(0)); !errors.Is(err, nullmodel.ErrOptionViolation) {
		t.Errorf("zero factor: want ErrOptionViolation, got %v", err)
	}
	if _, err := nullmodel.Rewire(g, nullmodel.WithMaxAttemptsFactor(-1)); !errors.Is(err, nullmodel.ErrOptionViolation) {
		t.Errorf("negative factor: want ErrOptionViolation, got %v", err)
	}
}

func TestShuffle_PreservesCounts(t *testing.T) {
	g := buildWheel(6)
	rg, err := nullmodel.Shuffle(g, nullmodel.WithSeed(11))
	require.NoError(t, err)

	assert.Equal(t, g.NodeCount(), rg.NodeCount())
	assert.Equal(t, g.EdgeCount(), rg.EdgeCount())
	assert.Equal(t, g.Nodes(), rg.Nodes())
	assert.False(t, rg.Directed())

	// Simple-graph invariants: no self-loops, no duplicate edges.
	seen := map[[2]string]bool{}
	for _, e := range rg.Edges() {
		assert.NotEqual(t, e[0], e[1], "self-loop %v", e)
		assert.False(t, seen[e], "duplicate edge %v", e)
		seen[e] = true
	}
}

func TestShuffle_DirectedKeepsOrientationDomain(t *testing.T) {
	g := buildDirectedCycle(6)
	rg, err := nullmodel.Shuffle(g, nullmodel.WithSeed(3))
	require.NoError(t, err)

	assert.True(t, rg.Directed())
	assert.Equal(t, g.EdgeCount(), rg.EdgeCount())
}

func TestShuffle_Reproducible(t *testing.T) {
	g := buildWheel(6)

	a, err := nullmodel.Shuffle(g, nullmodel.WithSeed(99))
	require.NoError(t, err)
	b, err := nullmodel.Shuffle(g, nullmodel.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges(), "same seed must replay the same graph")

	c, err := nullmodel.Shuffle(g, nullmodel.WithSeed(100))
	require.NoError(t, err)
	assert.NotEqual(t, a.Edges(), c.Edges(), "different seed should rewire differently")
}

func TestShuffle_EmptyAndCompleteGraphs(t *testing.T) {
	empty := core.NewAdjGraph()
	require.NoError(t, empty.AddNode("A"))
	require.NoError(t, empty.AddNode("B"))
	rg, err := nullmodel.Shuffle(empty, nullmodel.WithSeed(5))
	require.NoError(t, err)
	assert.Zero(t, rg.EdgeCount())

	// K4 is the only undirected simple graph with 4 nodes and 6 edges;
	// rejection sampling must still terminate and reproduce it.
	k4 := core.NewAdjGraph()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"A", "D"}, {"B", "C"}, {"B", "D"}, {"C", "D"}} {
		require.NoError(t, k4.AddEdge(e[0], e[1]))
	}
	rg, err = nullmodel.Shuffle(k4, nullmodel.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, k4.Edges(), rg.Edges())
}

func TestRewire_PreservesDegreeSequence(t *testing.T) {
	g := buildWheel(6)
	before := g.DegreeSequence()
	beforeEdges := edgeSet(g)

	rg, err := nullmodel.Rewire(g, nullmodel.WithSeed(21), nullmodel.WithMaxAttemptsFactor(100))
	require.NoError(t, err)

	assert.Equal(t, before, rg.DegreeSequence())
	assert.Equal(t, g.EdgeCount(), rg.EdgeCount())
	assert.Equal(t, g.Nodes(), rg.Nodes())

	// Per-node degrees, not just the sorted multiset.
	for _, id := range g.Nodes() {
		want, _ := g.Degree(id)
		got, gErr := rg.Degree(id)
		require.NoError(t, gErr)
		assert.Equal(t, want, got, "degree of %s", id)
	}

	// The input graph must be untouched.
	assert.Equal(t, beforeEdges, edgeSet(g))
}

func TestRewire_DirectedPreservesInOutDegrees(t *testing.T) {
	g := buildDirectedCycle(6)
	rg, err := nullmodel.Rewire(g, nullmodel.WithSeed(8), nullmodel.WithMaxAttemptsFactor(100))
	require.NoError(t, err)

	assert.True(t, rg.Directed())
	for _, id := range g.Nodes() {
		wantOut, _ := g.OutDegree(id)
		wantIn, _ := g.InDegree(id)
		gotOut, _ := rg.OutDegree(id)
		gotIn, _ := rg.InDegree(id)
		assert.Equal(t, wantOut, gotOut, "out-degree of %s", id)
		assert.Equal(t, wantIn, gotIn, "in-degree of %s", id)
	}
}

func TestRewire_Reproducible(t *testing.T) {
	g := buildWheel(6)

	a, err := nullmodel.Rewire(g, nullmodel.WithSeed(7), nullmodel.WithMaxAttemptsFactor(100))
	require.NoError(t, err)
	b, err := nullmodel.Rewire(g, nullmodel.WithSeed(7), nullmodel.WithMaxAttemptsFactor(100))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())
}

func TestRewire_TinyGraphsCopiedVerbatim(t *testing.T) {
	g := core.NewAdjGraph()
	require.NoError(t, g.AddEdge("A", "B"))

	rg, err := nullmodel.Rewire(g, nullmodel.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), rg.Edges())
}

func TestRewire_DegenerateWiring(t *testing.T) {
	// A path A–B–C admits no legal double-edge swap: every candidate
	// introduces a self-loop or a duplicate. The budget must expire.
	g := core.NewAdjGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))

	_, err := nullmodel.Rewire(g, nullmodel.WithSeed(13))
	assert.ErrorIs(t, err, nullmodel.ErrDegenerate)
}
