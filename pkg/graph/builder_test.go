package graph

import (
	"testing"

	"github.com/paulmach/osm"

	osmparser "walk_router/pkg/osm"
)

// manhattan is a cheap stand-in for geo.Haversine with easy to check values.
func manhattan(lat1, lon1, lat2, lon2 float64) float64 {
	abs := func(x float64) float64 {
		if x < 0 {
			return -x
		}
		return x
	}
	return abs(lat1-lat2) + abs(lon1-lon2)
}

func TestBuildFootways(t *testing.T) {
	// Footway 300 -> 100 -> 200, plus an isolated node 400.
	result := &osmparser.ParseResult{
		Footways: []osmparser.Footway{
			{ID: 1, Nodes: []osm.NodeID{300, 100, 200}},
		},
		NodeLat: map[osm.NodeID]float64{100: 1, 200: 3, 300: 0, 400: 9},
		NodeLon: map[osm.NodeID]float64{100: 0, 200: 0, 300: 0, 400: 9},
	}

	g := BuildFootways(result, manhattan)

	if g.VertexCount() != 4 {
		t.Fatalf("VertexCount = %d, want 4", g.VertexCount())
	}
	if g.EdgeCount() != 4 {
		t.Fatalf("EdgeCount = %d, want 4", g.EdgeCount())
	}

	// Vertices are inserted in ascending ID order.
	want := []osm.NodeID{100, 200, 300, 400}
	got := g.AllVertices()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllVertices()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	tests := []struct {
		from, to osm.NodeID
		want     float64
	}{
		{300, 100, 1},
		{100, 300, 1},
		{100, 200, 2},
		{200, 100, 2},
	}
	for _, tt := range tests {
		w, ok := g.Weight(tt.from, tt.to)
		if !ok || w != tt.want {
			t.Errorf("Weight(%d, %d) = %v, %v, want %v, true", tt.from, tt.to, w, ok, tt.want)
		}
	}

	if _, ok := g.Weight(300, 200); ok {
		t.Error("non-consecutive nodes should not be joined")
	}
	if g.OutDegree(400) != 0 {
		t.Errorf("OutDegree(400) = %d, want 0", g.OutDegree(400))
	}
}

func TestBuildFootwaysMissingCoords(t *testing.T) {
	// Node 2 has no coordinates, so both segments touching it are skipped.
	result := &osmparser.ParseResult{
		Footways: []osmparser.Footway{
			{ID: 1, Nodes: []osm.NodeID{1, 2, 3}},
			{ID: 2, Nodes: []osm.NodeID{3, 4}},
		},
		NodeLat: map[osm.NodeID]float64{1: 0, 3: 0, 4: 0},
		NodeLon: map[osm.NodeID]float64{1: 0, 3: 1, 4: 2},
	}

	g := BuildFootways(result, manhattan)

	if g.HasVertex(2) {
		t.Error("node without coordinates should not be a vertex")
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d, want 2", g.EdgeCount())
	}
}

func TestBuildFootwaysEmpty(t *testing.T) {
	result := &osmparser.ParseResult{
		NodeLat: map[osm.NodeID]float64{},
		NodeLon: map[osm.NodeID]float64{},
	}

	g := BuildFootways(result, manhattan)

	if g.VertexCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("got %d vertices, %d edges, want empty graph", g.VertexCount(), g.EdgeCount())
	}
}
