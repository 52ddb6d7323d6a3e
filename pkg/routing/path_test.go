package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstructPath(t *testing.T) {
	pred := map[string]Predecessor[string]{
		"A": Root[string](),
		"B": Via("A"),
		"C": Via("B"),
		"D": None[string](),
	}

	tests := []struct {
		name    string
		dest    string
		want    []string
		wantErr error
	}{
		{"chain", "C", []string{"A", "B", "C"}, nil},
		{"start", "A", []string{"A"}, nil},
		{"unreachable", "D", nil, ErrUnreachable},
		{"unknown destination", "Z", nil, ErrVertexNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReconstructPath(pred, "A", tt.dest)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReconstructPath_StartByLabel(t *testing.T) {
	// The walk stops at start even if start's own entry is not Root.
	pred := map[int]Predecessor[int]{
		1: Via(0),
		2: Via(1),
		3: Via(2),
	}

	got, err := ReconstructPath(pred, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestReconstructPath_RootElsewhere(t *testing.T) {
	// A chain that ends at a different root is not a path from start.
	pred := map[int]Predecessor[int]{
		1: Root[int](),
		2: Via(1),
		5: Root[int](),
	}

	_, err := ReconstructPath(pred, 5, 2)
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestReconstructPath_Cycle(t *testing.T) {
	pred := map[int]Predecessor[int]{
		1: Root[int](),
		2: Via(3),
		3: Via(2),
	}

	_, err := ReconstructPath(pred, 1, 2)
	assert.ErrorIs(t, err, ErrBrokenPath)
}
