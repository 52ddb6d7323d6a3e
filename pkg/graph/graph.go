package graph

import (
	"cmp"
	"maps"
	"slices"
)

// Weight is the set of numeric types usable as edge weights.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Graph is a directed graph with labelled vertices and weighted edges, stored
// as a sparse nested map: adj[from][to] = weight.
//
// The zero value is an empty graph ready to use. A Graph is not safe for
// concurrent mutation; once construction is finished it may be read from any
// number of goroutines. Mutating a graph while a shortest-path search runs
// over it is undefined behavior.
type Graph[V cmp.Ordered, W Weight] struct {
	adj      map[V]map[V]W
	vertices []V // insertion order
	numEdges int
}

// New returns an empty graph.
func New[V cmp.Ordered, W Weight]() *Graph[V, W] {
	return &Graph[V, W]{adj: make(map[V]map[V]W)}
}

// VertexCount returns the number of distinct vertices.
func (g *Graph[V, W]) VertexCount() int {
	return len(g.vertices)
}

// EdgeCount returns the number of directed edges.
func (g *Graph[V, W]) EdgeCount() int {
	return g.numEdges
}

// HasVertex reports whether v has been added.
func (g *Graph[V, W]) HasVertex(v V) bool {
	_, ok := g.adj[v]
	return ok
}

// AddVertex inserts v with no outgoing edges. It returns false, leaving the
// graph untouched, if v already exists.
func (g *Graph[V, W]) AddVertex(v V) bool {
	if g.adj == nil {
		g.adj = make(map[V]map[V]W)
	}
	if _, ok := g.adj[v]; ok {
		return false
	}
	g.adj[v] = make(map[V]W)
	g.vertices = append(g.vertices, v)
	return true
}

// AddEdge inserts the directed edge from→to, or overwrites its weight if it
// already exists. It returns false if either endpoint is missing.
//
// Edges are one-way: a two-way footpath needs two calls with the endpoints
// swapped.
func (g *Graph[V, W]) AddEdge(from, to V, weight W) bool {
	out, ok := g.adj[from]
	if !ok {
		return false
	}
	if _, ok := g.adj[to]; !ok {
		return false
	}
	if _, exists := out[to]; !exists {
		g.numEdges++
	}
	out[to] = weight
	return true
}

// Weight returns the weight of edge from→to and whether the edge exists.
func (g *Graph[V, W]) Weight(from, to V) (W, bool) {
	w, ok := g.adj[from][to]
	return w, ok
}

// Neighbors returns the targets of all edges leaving v in ascending order.
// It returns nil if v is unknown or has no outgoing edges.
func (g *Graph[V, W]) Neighbors(v V) []V {
	out := g.adj[v]
	if len(out) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(out))
}

// OutDegree returns the number of edges leaving v.
func (g *Graph[V, W]) OutDegree(v V) int {
	return len(g.adj[v])
}

// AllVertices returns a copy of the vertex list in insertion order.
func (g *Graph[V, W]) AllVertices() []V {
	return slices.Clone(g.vertices)
}
