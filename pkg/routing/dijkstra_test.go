package routing

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walk_router/pkg/graph"
)

// newGraph builds a directed graph from vertex labels and (from, to, weight) triples.
func newGraph[V ~string | ~int](t testing.TB, vertices []V, edges ...edge[V]) *graph.Graph[V, int] {
	t.Helper()
	g := graph.New[V, int]()
	for _, v := range vertices {
		require.True(t, g.AddVertex(v))
	}
	for _, e := range edges {
		require.True(t, g.AddEdge(e.from, e.to, e.w))
	}
	return g
}

type edge[V any] struct {
	from, to V
	w        int
}

func TestSolve_Triangle(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C"},
		edge[string]{"A", "B", 1},
		edge[string]{"B", "C", 2},
		edge[string]{"A", "C", 5},
	)

	res, err := Solve(g, "A")
	require.NoError(t, err)

	d, ok := res.DistanceTo("C")
	require.True(t, ok)
	assert.Equal(t, 3, d)

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)

	assert.True(t, res.Pred["A"].IsRoot())
	prev, ok := res.Pred["C"].Vertex()
	require.True(t, ok)
	assert.Equal(t, "B", prev)
}

func TestSolve_TieBreakKeepsFirstPredecessor(t *testing.T) {
	// Two equal-length routes to D; B is relaxed first and keeps D.
	g := newGraph(t, []string{"A", "B", "C", "D"},
		edge[string]{"A", "C", 1},
		edge[string]{"A", "B", 1},
		edge[string]{"C", "D", 1},
		edge[string]{"B", "D", 1},
	)

	res, err := Solve(g, "A")
	require.NoError(t, err)

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, path)
}

func TestSolve_Unreachable(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "E"},
		edge[string]{"A", "B", 4},
		edge[string]{"E", "A", 1}, // one-way into A only
	)

	res, err := Solve(g, "A")
	require.NoError(t, err)

	assert.False(t, res.Reachable("E"))
	_, ok := res.DistanceTo("E")
	assert.False(t, ok)
	assert.True(t, res.Dist["E"].IsInf())
	assert.True(t, res.Pred["E"].IsNone())

	_, err = res.PathTo("E")
	assert.ErrorIs(t, err, ErrUnreachable)

	assert.Equal(t, 2, res.Settled())
}

func TestSolve_StartNotFound(t *testing.T) {
	g := newGraph(t, []string{"A"})

	_, err := Solve(g, "Z")
	assert.ErrorIs(t, err, ErrVertexNotFound)
}

func TestSolve_StartIsDestination(t *testing.T) {
	g := newGraph(t, []string{"A", "B"}, edge[string]{"A", "B", 2})

	res, err := Solve(g, "A")
	require.NoError(t, err)

	d, ok := res.DistanceTo("A")
	require.True(t, ok)
	assert.Equal(t, 0, d)

	path, err := res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
}

func TestSolve_ZeroLabelVertex(t *testing.T) {
	// Vertex 0 is a real vertex, not "no predecessor".
	g := newGraph(t, []int{0, 1, 2},
		edge[int]{0, 1, 3},
		edge[int]{1, 2, 3},
	)

	res, err := Solve(g, 0)
	require.NoError(t, err)

	prev, ok := res.Pred[1].Vertex()
	require.True(t, ok)
	assert.Equal(t, 0, prev)

	path, err := res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)
}

func TestSolve_ZeroWeightEdges(t *testing.T) {
	g := newGraph(t, []int{1, 2, 3},
		edge[int]{1, 2, 0},
		edge[int]{2, 3, 0},
	)

	res, err := Solve(g, 1)
	require.NoError(t, err)

	d, ok := res.DistanceTo(3)
	require.True(t, ok)
	assert.Equal(t, 0, d)
}

func TestSolve_NegativeWeight(t *testing.T) {
	g := newGraph(t, []string{"A", "B"}, edge[string]{"A", "B", -5})

	_, err := Solve(g, "A")
	assert.ErrorIs(t, err, ErrNegativeWeight)
}

func TestSolve_Idempotent(t *testing.T) {
	g := randomGraph(t, 50, 200, 7)

	first, err := Solve(g, 0)
	require.NoError(t, err)
	second, err := Solve(g, 0)
	require.NoError(t, err)

	assert.Equal(t, first.Dist, second.Dist)
	assert.Equal(t, first.Pred, second.Pred)
}

func TestSolve_EveryVertexHasEntry(t *testing.T) {
	g := randomGraph(t, 30, 40, 3)

	res, err := Solve(g, 5)
	require.NoError(t, err)

	assert.Len(t, res.Dist, g.VertexCount())
	assert.Len(t, res.Pred, g.VertexCount())
}

func TestSolveContext_Cancelled(t *testing.T) {
	vertices := make([]int, 300)
	for i := range vertices {
		vertices[i] = i
	}
	g := newGraph(t, vertices)
	for i := range 299 {
		g.AddEdge(i, i+1, 1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SolveContext(ctx, g, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSolve_MatchesReference compares against a simple O(V^2) Dijkstra.
func TestSolve_MatchesReference(t *testing.T) {
	for seed := range uint64(5) {
		g := randomGraph(t, 60, 240, seed)

		res, err := Solve(g, 0)
		require.NoError(t, err)

		want := referenceDistances(g, 0)
		for _, v := range g.AllVertices() {
			got, ok := res.DistanceTo(v)
			wantDist, wantOK := want[v]
			require.Equal(t, wantOK, ok, "seed=%d vertex=%d reachability", seed, v)
			if !ok {
				continue
			}
			assert.Equal(t, wantDist, got, "seed=%d vertex=%d", seed, v)

			// The path must add up to the reported distance.
			path, err := res.PathTo(v)
			require.NoError(t, err)
			require.Equal(t, 0, path[0])
			require.Equal(t, v, path[len(path)-1])
			var sum int
			for i := 1; i < len(path); i++ {
				w, ok := g.Weight(path[i-1], path[i])
				require.True(t, ok)
				sum += w
			}
			assert.Equal(t, got, sum, "seed=%d vertex=%d path length", seed, v)
		}
	}
}

func randomGraph(t testing.TB, n, m int, seed uint64) *graph.Graph[int, int] {
	t.Helper()
	r := rand.New(rand.NewPCG(seed, 42))
	g := graph.New[int, int]()
	for v := range n {
		g.AddVertex(v)
	}
	for range m {
		g.AddEdge(r.IntN(n), r.IntN(n), r.IntN(20))
	}
	return g
}

// referenceDistances runs a textbook array-scan Dijkstra. Unreachable
// vertices are absent from the result.
func referenceDistances(g *graph.Graph[int, int], source int) map[int]int {
	dist := map[int]int{source: 0}
	done := make(map[int]bool)

	for {
		u, best := -1, 0
		for v, d := range dist {
			if done[v] {
				continue
			}
			if u == -1 || d < best || (d == best && v < u) {
				u, best = v, d
			}
		}
		if u == -1 {
			return dist
		}
		done[u] = true

		for _, v := range g.Neighbors(u) {
			w, _ := g.Weight(u, v)
			if d, ok := dist[v]; !ok || best+w < d {
				dist[v] = best + w
			}
		}
	}
}

func BenchmarkSolve(b *testing.B) {
	g := randomGraph(b, 2000, 10000, 1)
	for b.Loop() {
		_, _ = Solve(g, 0)
	}
}
