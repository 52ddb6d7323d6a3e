package graph

import "cmp"

// UnionFind implements a disjoint-set data structure with path compression
// and union by rank.
type UnionFind struct {
	parent []uint32
	rank   []byte // ranks stay below 64
	size   []uint32
	sets   int
}

// NewUnionFind creates a UnionFind for n elements.
func NewUnionFind(n uint32) *UnionFind {
	parent := make([]uint32, n)
	size := make([]uint32, n)
	for i := range n {
		parent[i] = i
		size[i] = 1
	}
	return &UnionFind{
		parent: parent,
		rank:   make([]byte, n),
		size:   size,
		sets:   int(n),
	}
}

// Find returns the representative of the set containing x, with path halving.
func (uf *UnionFind) Find(x uint32) uint32 {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]] // path halving
		x = uf.parent[x]
	}
	return x
}

// Union merges the sets containing x and y. Returns false if already same set.
func (uf *UnionFind) Union(x, y uint32) bool {
	rx := uf.Find(x)
	ry := uf.Find(y)
	if rx == ry {
		return false
	}

	// Union by rank.
	if uf.rank[rx] < uf.rank[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	uf.size[rx] += uf.size[ry]
	if uf.rank[rx] == uf.rank[ry] {
		uf.rank[rx]++
	}
	uf.sets--
	return true
}

// Sets returns the number of disjoint sets.
func (uf *UnionFind) Sets() int {
	return uf.sets
}

// components unions every edge of g (direction ignored). Element i of the
// returned UnionFind is g's i-th vertex in insertion order.
func components[V cmp.Ordered, W Weight](g *Graph[V, W]) *UnionFind {
	index := make(map[V]uint32, len(g.vertices))
	for i, v := range g.vertices {
		index[v] = uint32(i)
	}

	uf := NewUnionFind(uint32(len(g.vertices)))
	for i, from := range g.vertices {
		for to := range g.adj[from] {
			uf.Union(uint32(i), index[to])
		}
	}
	return uf
}

// ComponentCount returns the number of weakly connected components of g.
func ComponentCount[V cmp.Ordered, W Weight](g *Graph[V, W]) int {
	return components(g).Sets()
}

// LargestComponent returns the vertices of the largest weakly connected
// component (treating the directed graph as undirected), in insertion order.
// Ties go to the component whose first vertex was inserted first.
func LargestComponent[V cmp.Ordered, W Weight](g *Graph[V, W]) []V {
	if len(g.vertices) == 0 {
		return nil
	}

	uf := components(g)

	// Find the representative with the largest size.
	bestRoot := uf.Find(0)
	bestSize := uf.size[bestRoot]
	for i := range uint32(len(g.vertices)) {
		root := uf.Find(i)
		if uf.size[root] > bestSize {
			bestRoot = root
			bestSize = uf.size[root]
		}
	}

	// Collect all vertices in the largest component.
	vertices := make([]V, 0, bestSize)
	for i, v := range g.vertices {
		if uf.Find(uint32(i)) == bestRoot {
			vertices = append(vertices, v)
		}
	}

	return vertices
}
