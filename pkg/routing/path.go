package routing

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrBrokenPath is returned when a predecessor chain loops instead of
// leading back to the start.
var ErrBrokenPath = errors.New("predecessor chain does not reach start")

// ReconstructPath walks pred backwards from dest until it reaches start and
// returns the path in travel order, both ends included.
func ReconstructPath[V cmp.Ordered](pred map[V]Predecessor[V], start, dest V) ([]V, error) {
	if _, ok := pred[dest]; !ok {
		return nil, fmt.Errorf("destination %v: %w", dest, ErrVertexNotFound)
	}

	path := []V{dest}
	for cur := dest; cur != start; {
		if len(path) > len(pred) {
			return nil, fmt.Errorf("%v to %v: %w", start, dest, ErrBrokenPath)
		}
		prev, ok := pred[cur].Vertex()
		if !ok {
			return nil, fmt.Errorf("%v from %v: %w", dest, start, ErrUnreachable)
		}
		path = append(path, prev)
		cur = prev
	}

	slices.Reverse(path)
	return path, nil
}
