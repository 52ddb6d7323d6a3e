// Package campus loads a map file into a ready-to-query navigation engine.
package campus

import (
	"context"
	"log"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/paulmach/osm"

	"walk_router/pkg/buildings"
	"walk_router/pkg/geo"
	"walk_router/pkg/graph"
	osmparser "walk_router/pkg/osm"
	"walk_router/pkg/routing"
)

// Campus is a parsed map with its footway graph and lookup structures.
type Campus struct {
	Map       *osmparser.ParseResult
	Graph     *graph.Graph[osm.NodeID, float64]
	Directory *buildings.Directory
	Snapper   *routing.Snapper
	Engine    *routing.Engine
}

// Stats summarizes a loaded campus.
type Stats struct {
	Nodes            int
	Footways         int
	Buildings        int
	Vertices         int
	Edges            int
	Components       int
	LargestComponent int
}

// Options configures Load.
type Options struct {
	Parse         osmparser.ParseOptions
	MaxSnapMeters float64 // zero means unlimited
}

// Load parses the map at path and builds everything needed to navigate it.
func Load(ctx context.Context, path string, opts Options) (*Campus, error) {
	start := time.Now()

	result, err := osmparser.ParseFile(ctx, path, opts.Parse)
	if err != nil {
		return nil, err
	}

	c := New(result)
	c.Snapper.MaxDistanceMeters = opts.MaxSnapMeters

	log.Printf("Loaded %s in %s: %s nodes, %s footways, %s buildings",
		path, time.Since(start).Round(time.Millisecond),
		humanize.Comma(int64(len(result.NodeLat))),
		humanize.Comma(int64(len(result.Footways))),
		humanize.Comma(int64(len(result.Buildings))))

	return c, nil
}

// New builds a campus from already parsed map data.
func New(result *osmparser.ParseResult) *Campus {
	g := graph.BuildFootways(result, geo.Haversine)
	dir := buildings.NewDirectory(result.Buildings)
	snapper := routing.NewSnapper(result)

	return &Campus{
		Map:       result,
		Graph:     g,
		Directory: dir,
		Snapper:   snapper,
		Engine:    routing.NewEngine(g, dir, snapper),
	}
}

// Stats counts the campus contents and logs how much of the footway network
// is mutually connected.
func (c *Campus) Stats() Stats {
	s := Stats{
		Nodes:      len(c.Map.NodeLat),
		Footways:   len(c.Map.Footways),
		Buildings:  c.Directory.Len(),
		Vertices:   c.Graph.VertexCount(),
		Edges:      c.Graph.EdgeCount(),
		Components: graph.ComponentCount(c.Graph),
	}
	s.LargestComponent = len(graph.LargestComponent(c.Graph))

	if s.Vertices > 0 {
		log.Printf("Graph: %s vertices, %s edges, %s components; largest has %s vertices (%.1f%%)",
			humanize.Comma(int64(s.Vertices)), humanize.Comma(int64(s.Edges)),
			humanize.Comma(int64(s.Components)), humanize.Comma(int64(s.LargestComponent)),
			float64(s.LargestComponent)/float64(s.Vertices)*100)
	}
	return s
}
