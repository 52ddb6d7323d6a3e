package routing

import (
	"context"
	"errors"
	"fmt"

	"github.com/paulmach/osm"

	"walk_router/pkg/buildings"
	"walk_router/pkg/geo"
	"walk_router/pkg/graph"
	osmparser "walk_router/pkg/osm"
)

var (
	// ErrNoRoute is returned when no route exists between the two buildings.
	ErrNoRoute = errors.New("no route found")

	// ErrStartNotFound is returned when the start query matches no building.
	ErrStartNotFound = errors.New("start building not found")

	// ErrDestinationNotFound is returned when the destination query matches no building.
	ErrDestinationNotFound = errors.New("destination building not found")
)

// LatLng represents a geographic coordinate.
type LatLng struct {
	Lat float64
	Lng float64
}

// Plan is a resolved navigation request: both buildings and the footway
// nodes nearest to them.
type Plan struct {
	Start       osmparser.Building
	Destination osmparser.Building
	StartNode   Node
	DestNode    Node
}

// RouteResult is the output of a route query.
type RouteResult struct {
	Plan                *Plan
	TotalDistanceMeters float64
	TotalDistanceMiles  float64
	Path                []osm.NodeID
	Geometry            []LatLng
	Settled             int // vertices finalized by the search
}

// Router is the interface for route queries.
type Router interface {
	Route(ctx context.Context, start, destination string) (*RouteResult, error)
}

// Engine implements Router over a footway graph. It never mutates the graph,
// so one Engine can serve concurrent queries.
type Engine struct {
	g         *graph.Graph[osm.NodeID, float64]
	directory *buildings.Directory
	snapper   *Snapper
}

// NewEngine creates a navigation engine.
func NewEngine(g *graph.Graph[osm.NodeID, float64], directory *buildings.Directory, snapper *Snapper) *Engine {
	return &Engine{
		g:         g,
		directory: directory,
		snapper:   snapper,
	}
}

// Plan looks up both buildings and the footway nodes nearest to them.
func (e *Engine) Plan(startQuery, destQuery string) (*Plan, error) {
	start, ok := e.directory.Lookup(startQuery)
	if !ok {
		return nil, fmt.Errorf("%q: %w", startQuery, ErrStartNotFound)
	}
	dest, ok := e.directory.Lookup(destQuery)
	if !ok {
		return nil, fmt.Errorf("%q: %w", destQuery, ErrDestinationNotFound)
	}

	startNode, err := e.snapper.Nearest(start.Lat, start.Lon)
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", start.Fullname, err)
	}
	destNode, err := e.snapper.Nearest(dest.Lat, dest.Lon)
	if err != nil {
		return nil, fmt.Errorf("destination %s: %w", dest.Fullname, err)
	}

	return &Plan{
		Start:       start,
		Destination: dest,
		StartNode:   startNode,
		DestNode:    destNode,
	}, nil
}

// Navigate computes the shortest walk between the nodes of a plan.
func (e *Engine) Navigate(ctx context.Context, p *Plan) (*RouteResult, error) {
	res, err := SolveContext(ctx, e.g, p.StartNode.ID)
	if err != nil {
		return nil, err
	}

	path, err := res.PathTo(p.DestNode.ID)
	if errors.Is(err, ErrUnreachable) {
		return nil, fmt.Errorf("%w: %w", ErrNoRoute, err)
	}
	if err != nil {
		return nil, err
	}

	meters, _ := res.DistanceTo(p.DestNode.ID)

	return &RouteResult{
		Plan:                p,
		TotalDistanceMeters: meters,
		TotalDistanceMiles:  geo.MetersToMiles(meters),
		Path:                path,
		Geometry:            e.buildGeometry(path),
		Settled:             res.Settled(),
	}, nil
}

// Route resolves both queries and computes the shortest walk between them.
func (e *Engine) Route(ctx context.Context, start, destination string) (*RouteResult, error) {
	p, err := e.Plan(start, destination)
	if err != nil {
		return nil, err
	}
	return e.Navigate(ctx, p)
}

// buildGeometry converts a node path into coordinates.
func (e *Engine) buildGeometry(nodes []osm.NodeID) []LatLng {
	geom := make([]LatLng, 0, len(nodes))
	for _, id := range nodes {
		lat, lon, ok := e.snapper.Coords(id)
		if !ok {
			continue
		}
		geom = append(geom, LatLng{Lat: lat, Lng: lon})
	}
	return geom
}
