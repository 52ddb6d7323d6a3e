package routing

import (
	"cmp"

	"walk_router/pkg/graph"
)

// entry is a frontier item. Entries are never updated in place; a shorter
// distance pushes a new entry and the old one is skipped when popped.
type entry[V cmp.Ordered, W graph.Weight] struct {
	vertex V
	dist   Distance[W]
}

// prioritize orders frontier entries: finite before infinite, then smaller
// distance, then smaller vertex label.
func prioritize[V cmp.Ordered, W graph.Weight](a, b entry[V, W]) int {
	if c := a.dist.compare(b.dist); c != 0 {
		return c
	}
	return cmp.Compare(a.vertex, b.vertex)
}

// frontier is a concrete-typed binary min-heap ordered by prioritize.
// Avoids interface boxing overhead of container/heap.
type frontier[V cmp.Ordered, W graph.Weight] struct {
	items []entry[V, W]
}

func newFrontier[V cmp.Ordered, W graph.Weight](capacity int) *frontier[V, W] {
	return &frontier[V, W]{items: make([]entry[V, W], 0, capacity)}
}

func (h *frontier[V, W]) Len() int { return len(h.items) }

func (h *frontier[V, W]) Push(v V, d Distance[W]) {
	h.items = append(h.items, entry[V, W]{v, d})
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the highest-priority entry. The heap must not be empty.
func (h *frontier[V, W]) Pop() entry[V, W] {
	n := len(h.items)
	item := h.items[0]
	h.items[0] = h.items[n-1]
	h.items = h.items[:n-1]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return item
}

func (h *frontier[V, W]) less(i, j int) bool {
	return prioritize(h.items[i], h.items[j]) < 0
}

func (h *frontier[V, W]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *frontier[V, W]) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < n && h.less(left, smallest) {
			smallest = left
		}
		if right < n && h.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
