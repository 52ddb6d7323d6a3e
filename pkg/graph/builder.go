package graph

import (
	"log"
	"slices"

	"github.com/paulmach/osm"

	osmparser "walk_router/pkg/osm"
)

// DistanceFunc returns the distance between two coordinates.
type DistanceFunc func(lat1, lon1, lat2, lon2 float64) float64

// BuildFootways creates a graph from parsed OSM data. Every node with known
// coordinates becomes a vertex, inserted in ascending ID order. Each pair of
// consecutive footway nodes is joined by an edge in both directions weighted
// by dist.
func BuildFootways(result *osmparser.ParseResult, dist DistanceFunc) *Graph[osm.NodeID, float64] {
	g := New[osm.NodeID, float64]()

	ids := make([]osm.NodeID, 0, len(result.NodeLat))
	for id := range result.NodeLat {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		g.AddVertex(id)
	}

	var skipped int
	for _, fw := range result.Footways {
		for i := 1; i < len(fw.Nodes); i++ {
			a, b := fw.Nodes[i-1], fw.Nodes[i]
			latA, lonA, okA := result.Coords(a)
			latB, lonB, okB := result.Coords(b)
			if !okA || !okB {
				skipped++
				continue
			}

			d := dist(latA, lonA, latB, lonB)
			g.AddEdge(a, b, d)
			g.AddEdge(b, a, d)
		}
	}

	if skipped > 0 {
		log.Printf("Warning: skipped %d footway segments with missing node coordinates", skipped)
	}

	return g
}
