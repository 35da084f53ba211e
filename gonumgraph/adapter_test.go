package gonumgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/mgab/motifs/census"
	"github.com/mgab/motifs/core"
	"github.com/mgab/motifs/gonumgraph"
	"github.com/mgab/motifs/motif"
)

// buildPendantPair builds the triangle-with-pendant topology twice: once as
// a gonum simple graph (nodes 1..4) and once as an AdjGraph with the same
// decimal names.
func buildPendantPair(t *testing.T) (*gonumgraph.Adapter, *core.AdjGraph) {
	t.Helper()

	sg := simple.NewUndirectedGraph()
	for _, e := range [][2]int64{{1, 2}, {2, 3}, {3, 1}, {3, 4}} {
		sg.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}
	ad, err := gonumgraph.New(sg)
	require.NoError(t, err)

	ref := core.NewAdjGraph()
	for _, e := range [][2]string{{"1", "2"}, {"2", "3"}, {"3", "1"}, {"3", "4"}} {
		require.NoError(t, ref.AddEdge(e[0], e[1]))
	}

	return ad, ref
}

func TestNew_NilGraph(t *testing.T) {
	_, err := gonumgraph.New(nil)
	assert.ErrorIs(t, err, core.ErrGraphNil)
}

func TestAdapter_MatchesAdjGraph(t *testing.T) {
	ad, ref := buildPendantPair(t)

	assert.Equal(t, ref.Nodes(), ad.Nodes())
	assert.Equal(t, ref.NodeCount(), ad.NodeCount())
	assert.Equal(t, ref.EdgeCount(), ad.EdgeCount())
	assert.Equal(t, ref.Directed(), ad.Directed())

	for _, id := range ref.Nodes() {
		wantN, err := ref.Neighbors(id)
		require.NoError(t, err)
		gotN, err := ad.Neighbors(id)
		require.NoError(t, err)
		assert.Equal(t, wantN, gotN, "neighbors of %s", id)

		wantD, err := ref.Degree(id)
		require.NoError(t, err)
		gotD, err := ad.Degree(id)
		require.NoError(t, err)
		assert.Equal(t, wantD, gotD, "degree of %s", id)
	}

	for _, u := range ref.Nodes() {
		for _, v := range ref.Nodes() {
			if u == v {
				continue
			}
			want, err := ref.HasEdge(u, v)
			require.NoError(t, err)
			got, err := ad.HasEdge(u, v)
			require.NoError(t, err)
			assert.Equal(t, want, got, "edge %s-%s", u, v)
		}
	}
}

func TestAdapter_QueryErrors(t *testing.T) {
	ad, _ := buildPendantPair(t)

	if _, err := ad.Neighbors(""); !errors.Is(err, core.ErrEmptyNodeID) {
		t.Errorf("empty ID: want ErrEmptyNodeID, got %v", err)
	}
	if _, err := ad.Neighbors("9"); !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("unknown ID: want ErrNodeNotFound, got %v", err)
	}
	if _, err := ad.Degree("9"); !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("unknown ID: want ErrNodeNotFound, got %v", err)
	}
	if _, err := ad.HasEdge("1", "9"); !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("unknown endpoint: want ErrNodeNotFound, got %v", err)
	}
}

func TestAdapter_Directed(t *testing.T) {
	sg := simple.NewDirectedGraph()
	for _, e := range [][2]int64{{1, 2}, {2, 3}, {1, 3}} {
		sg.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}
	ad, err := gonumgraph.New(sg)
	require.NoError(t, err)

	assert.True(t, ad.Directed())
	assert.Equal(t, 3, ad.EdgeCount())

	// Orientation must survive the adaptation.
	has, err := ad.HasEdge("1", "2")
	require.NoError(t, err)
	assert.True(t, has)
	has, err = ad.HasEdge("2", "1")
	require.NoError(t, err)
	assert.False(t, has)

	// Degree counts both directions; neighbors union them.
	d, err := ad.Degree("3")
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	nbrs, err := ad.Neighbors("2")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, nbrs)
}

func TestAdapter_CensusMatchesReference(t *testing.T) {
	ad, ref := buildPendantPair(t)

	got, err := census.Count(ad, 3)
	require.NoError(t, err)
	want, err := census.Count(ref, 3)
	require.NoError(t, err)

	assert.Equal(t, want.Total(), got.Total())
	require.Equal(t, want.Classes(), got.Classes())
	for _, sig := range want.Classes() {
		assert.Equal(t, want.Get(sig), got.Get(sig))
	}
}

func TestAdapter_EvaluateEndToEnd(t *testing.T) {
	ad, ref := buildPendantPair(t)

	a, err := motif.Evaluate(ad, 3,
		motif.WithEdgeShuffle(),
		motif.WithEnsembleSize(10),
		motif.WithSeed(3),
	)
	require.NoError(t, err)
	b, err := motif.Evaluate(ref, 3,
		motif.WithEdgeShuffle(),
		motif.WithEnsembleSize(10),
		motif.WithSeed(3),
	)
	require.NoError(t, err)

	require.Len(t, a.Classes, len(b.Classes))
	for i := range a.Classes {
		assert.Equal(t, b.Classes[i].Signature, a.Classes[i].Signature)
		assert.Equal(t, b.Classes[i].RealCount, a.Classes[i].RealCount)
		assert.Equal(t, b.Classes[i].NullMean, a.Classes[i].NullMean)
	}
}
