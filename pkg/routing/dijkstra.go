package routing

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"walk_router/pkg/graph"
)

var (
	// ErrVertexNotFound is returned when a search or path names a vertex
	// the graph does not contain.
	ErrVertexNotFound = errors.New("vertex not found")

	// ErrNegativeWeight is returned when the search meets an edge with a
	// negative weight.
	ErrNegativeWeight = errors.New("negative edge weight")

	// ErrUnreachable is returned when no path leads to the destination.
	ErrUnreachable = errors.New("destination unreachable")
)

// ctxCheckInterval is how many frontier pops happen between context checks.
const ctxCheckInterval = 256

// Network is the read-only graph view the solver needs.
// *graph.Graph satisfies it.
type Network[V cmp.Ordered, W graph.Weight] interface {
	HasVertex(v V) bool
	AllVertices() []V
	Neighbors(v V) []V
	Weight(from, to V) (W, bool)
}

// Result holds single-source shortest path distances and predecessors.
// Every vertex of the searched graph has an entry in both maps.
type Result[V cmp.Ordered, W graph.Weight] struct {
	Start V
	Dist  map[V]Distance[W]
	Pred  map[V]Predecessor[V]

	settled int
}

// DistanceTo returns the shortest distance from Start to v, or false if v is
// unreachable or unknown.
func (r *Result[V, W]) DistanceTo(v V) (W, bool) {
	return r.Dist[v].Value()
}

// Reachable reports whether a path from Start to v exists.
func (r *Result[V, W]) Reachable(v V) bool {
	return !r.Dist[v].IsInf()
}

// PathTo returns the vertices of the shortest path from Start to v, both ends
// included.
func (r *Result[V, W]) PathTo(v V) ([]V, error) {
	return ReconstructPath(r.Pred, r.Start, v)
}

// Settled returns the number of vertices whose distance was finalized.
func (r *Result[V, W]) Settled() int {
	return r.settled
}

// Solve computes shortest paths from start to every vertex of g.
func Solve[V cmp.Ordered, W graph.Weight](g Network[V, W], start V) (*Result[V, W], error) {
	return SolveContext(context.Background(), g, start)
}

// SolveContext is Solve with cancellation. The context is checked
// periodically while the frontier is drained.
//
// Every vertex is seeded into the frontier at infinity and start at zero.
// Neighbors are relaxed in ascending label order and only a strictly shorter
// distance replaces a predecessor, so the result is deterministic. Outdated
// frontier entries are skipped when popped rather than removed.
func SolveContext[V cmp.Ordered, W graph.Weight](ctx context.Context, g Network[V, W], start V) (*Result[V, W], error) {
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("start %v: %w", start, ErrVertexNotFound)
	}

	vertices := g.AllVertices()
	dist := make(map[V]Distance[W], len(vertices))
	pred := make(map[V]Predecessor[V], len(vertices))
	pq := newFrontier[V, W](len(vertices) + 1)

	for _, v := range vertices {
		dist[v] = Infinity[W]()
		pred[v] = None[V]()
		pq.Push(v, Infinity[W]())
	}
	var zero W
	dist[start] = Finite(zero)
	pred[start] = Root[V]()
	pq.Push(start, dist[start])

	visited := make(map[V]struct{}, len(vertices))
	var pops int

	for pq.Len() > 0 {
		pops++
		if pops%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("solve from %v: %w", start, err)
			}
		}

		u := pq.Pop().vertex

		// Everything still queued is unreachable.
		du, ok := dist[u].Value()
		if !ok {
			break
		}

		if _, done := visited[u]; done {
			continue
		}
		visited[u] = struct{}{}

		for _, v := range g.Neighbors(u) {
			w, _ := g.Weight(u, v)
			if w < 0 {
				return nil, fmt.Errorf("edge %v->%v (%v): %w", u, v, w, ErrNegativeWeight)
			}

			candidate := Finite(du + w)
			if candidate.compare(dist[v]) < 0 {
				dist[v] = candidate
				pred[v] = Via(u)
				pq.Push(v, candidate)
			}
		}
	}

	return &Result[V, W]{
		Start:   start,
		Dist:    dist,
		Pred:    pred,
		settled: len(visited),
	}, nil
}
