package routing

import (
	"cmp"
	"fmt"

	"walk_router/pkg/graph"
)

// Distance is a tentative or final path length. The zero value is infinity
// (not yet reached), so a fresh map entry reads as unreachable.
type Distance[W graph.Weight] struct {
	value  W
	finite bool
}

// Finite returns a reachable distance of w.
func Finite[W graph.Weight](w W) Distance[W] {
	return Distance[W]{value: w, finite: true}
}

// Infinity returns the distance of an unreached vertex.
func Infinity[W graph.Weight]() Distance[W] {
	return Distance[W]{}
}

// Value returns the distance and true, or false if it is infinite.
func (d Distance[W]) Value() (W, bool) {
	return d.value, d.finite
}

// IsInf reports whether d is infinite.
func (d Distance[W]) IsInf() bool {
	return !d.finite
}

func (d Distance[W]) String() string {
	if !d.finite {
		return "inf"
	}
	return fmt.Sprint(d.value)
}

// compare orders finite distances before infinite ones.
func (d Distance[W]) compare(o Distance[W]) int {
	switch {
	case d.finite && o.finite:
		return cmp.Compare(d.value, o.value)
	case d.finite:
		return -1
	case o.finite:
		return 1
	}
	return 0
}

type predKind uint8

const (
	predNone predKind = iota
	predRoot
	predVertex
)

// Predecessor is the vertex preceding another on its shortest path. The zero
// value means no predecessor is known; the search start has the Root
// predecessor. A real vertex with the zero label is distinct from both.
type Predecessor[V cmp.Ordered] struct {
	vertex V
	kind   predKind
}

// None returns the predecessor of an unreached vertex.
func None[V cmp.Ordered]() Predecessor[V] {
	return Predecessor[V]{}
}

// Root returns the predecessor of the search start.
func Root[V cmp.Ordered]() Predecessor[V] {
	return Predecessor[V]{kind: predRoot}
}

// Via returns a predecessor pointing at v.
func Via[V cmp.Ordered](v V) Predecessor[V] {
	return Predecessor[V]{vertex: v, kind: predVertex}
}

// Vertex returns the preceding vertex, or false for None and Root.
func (p Predecessor[V]) Vertex() (V, bool) {
	return p.vertex, p.kind == predVertex
}

// IsRoot reports whether p marks the search start.
func (p Predecessor[V]) IsRoot() bool {
	return p.kind == predRoot
}

// IsNone reports whether p is unset.
func (p Predecessor[V]) IsNone() bool {
	return p.kind == predNone
}

func (p Predecessor[V]) String() string {
	switch p.kind {
	case predRoot:
		return "root"
	case predVertex:
		return fmt.Sprint(p.vertex)
	}
	return "none"
}
