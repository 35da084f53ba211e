package esu_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgab/motifs/core"
	"github.com/mgab/motifs/esu"
)

// buildTrianglePendant creates the undirected fixture
// A–B, B–C, C–A (triangle) plus pendant edge C–D.
func buildTrianglePendant() *core.AdjGraph {
	g := core.NewAdjGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "A")
	g.AddEdge("C", "D")

	return g
}

// buildWheel creates a hub H connected to n rim nodes R0..R(n-1), with the
// rim closed into a cycle.
func buildWheel(n int) *core.AdjGraph {
	g := core.NewAdjGraph()
	for i := 0; i < n; i++ {
		g.AddEdge("H", "R"+strconv.Itoa(i))
		g.AddEdge("R"+strconv.Itoa(i), "R"+strconv.Itoa((i+1)%n))
	}

	return g
}

// collect drains an enumerator into a slice of canonical "A,B,C" keys.
func collect(t *testing.T, g core.Graph, k int) []string {
	t.Helper()
	en, err := esu.Enumerate(g, k)
	require.NoError(t, err)

	var keys []string
	for nodes, ok := en.Next(); ok; nodes, ok = en.Next() {
		assert.Len(t, nodes, k)
		assert.True(t, sort.StringsAreSorted(nodes), "emitted set must be sorted")
		keys = append(keys, strings.Join(nodes, ","))
	}
	require.NoError(t, en.Err())

	return keys
}

// bruteForce returns the "A,B,C" keys of every k-subset of g's nodes whose
// induced subgraph is connected (weakly, for directed graphs).
func bruteForce(t *testing.T, g core.Graph, k int) []string {
	t.Helper()
	nodes := g.Nodes()

	var out []string
	subset := make([]string, 0, k)
	var rec func(start int)
	rec = func(start int) {
		if len(subset) == k {
			if inducedConnected(t, g, subset) {
				out = append(out, strings.Join(subset, ","))
			}

			return
		}
		for i := start; i < len(nodes); i++ {
			subset = append(subset, nodes[i])
			rec(i + 1)
			subset = subset[:len(subset)-1]
		}
	}
	rec(0)
	sort.Strings(out)

	return out
}

// inducedConnected checks connectivity of the subgraph induced by set,
// ignoring edge orientation.
func inducedConnected(t *testing.T, g core.Graph, set []string) bool {
	t.Helper()
	linked := func(u, v string) bool {
		uv, err := g.HasEdge(u, v)
		require.NoError(t, err)
		vu, err := g.HasEdge(v, u)
		require.NoError(t, err)

		return uv || vu
	}

	seen := map[string]bool{set[0]: true}
	queue := []string{set[0]}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range set {
			if !seen[v] && linked(u, v) {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return len(seen) == len(set)
}

func TestEnumerate_Errors(t *testing.T) {
	if _, err := esu.Enumerate(nil, 3); !errors.Is(err, esu.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := buildTrianglePendant()
	for _, k := range []int{-1, 0, 1} {
		if _, err := esu.Enumerate(g, k); !errors.Is(err, esu.ErrBadMotifSize) {
			t.Errorf("k=%d: want ErrBadMotifSize, got %v", k, err)
		}
	}
}

func TestEnumerate_TrianglePendant(t *testing.T) {
	got := collect(t, buildTrianglePendant(), 3)
	sort.Strings(got)

	// Triangle {A,B,C} plus the two pendant paths through C.
	want := []string{"A,B,C", "A,C,D", "B,C,D"}
	assert.Equal(t, want, got)
}

func TestEnumerate_NoDuplicates(t *testing.T) {
	for _, k := range []int{2, 3, 4, 5} {
		got := collect(t, buildWheel(6), k)
		seen := make(map[string]bool, len(got))
		for _, key := range got {
			if seen[key] {
				t.Errorf("k=%d: duplicate emission %q", k, key)
			}
			seen[key] = true
		}
	}
}

func TestEnumerate_MatchesBruteForce(t *testing.T) {
	graphs := map[string]core.Graph{
		"trianglePendant": buildTrianglePendant(),
		"wheel6":          buildWheel(6),
	}
	// Two disconnected triangles: sets straddling components must vanish.
	twoTri := core.NewAdjGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}, {"X", "Y"}, {"Y", "Z"}, {"Z", "X"}} {
		require.NoError(t, twoTri.AddEdge(e[0], e[1]))
	}
	graphs["twoTriangles"] = twoTri

	// Directed chain with mixed orientation: weak connectivity applies.
	chain := core.NewAdjGraph(core.WithDirected(true))
	require.NoError(t, chain.AddEdge("A", "B"))
	require.NoError(t, chain.AddEdge("C", "B"))
	require.NoError(t, chain.AddEdge("C", "D"))
	graphs["directedZigzag"] = chain

	for name, g := range graphs {
		for k := 2; k <= 4; k++ {
			got := collect(t, g, k)
			sort.Strings(got)
			want := bruteForce(t, g, k)
			assert.Equal(t, want, got, "%s k=%d", name, k)
		}
	}
}

func TestEnumerate_KEqualsOrder(t *testing.T) {
	// Connected graph, k == |V|: exactly the whole node set.
	got := collect(t, buildTrianglePendant(), 4)
	assert.Equal(t, []string{"A,B,C,D"}, got)

	// Disconnected graph, k == |V|: nothing.
	g := core.NewAdjGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("C", "D"))
	assert.Empty(t, collect(t, g, 4))
}

func TestEnumerate_KLargerThanOrder(t *testing.T) {
	assert.Empty(t, collect(t, buildTrianglePendant(), 5))
}

func TestEnumerate_WalkAbortsOnCallbackError(t *testing.T) {
	en, err := esu.Enumerate(buildWheel(6), 3)
	require.NoError(t, err)

	calls := 0
	wantErr := fmt.Errorf("stop here")
	err = en.Walk(func(nodes []string) error {
		calls++
		if calls == 2 {
			return wantErr
		}

		return nil
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 2, calls)

	// The stream is spent after an aborted walk.
	_, ok := en.Next()
	assert.False(t, ok)
}

func TestEnumerate_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	en, err := esu.Enumerate(buildWheel(8), 4, esu.WithContext(ctx))
	require.NoError(t, err)

	_, ok := en.Next()
	require.True(t, ok)
	cancel()

	for _, stillOK := en.Next(); stillOK; _, stillOK = en.Next() {
	}
	assert.ErrorIs(t, en.Err(), context.Canceled)
}
