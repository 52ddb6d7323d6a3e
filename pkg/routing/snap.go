package routing

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/osm"
	"github.com/tidwall/rtree"

	"walk_router/pkg/geo"
	osmparser "walk_router/pkg/osm"
)

var (
	// ErrNoFootways is returned when there are no footway nodes to snap to.
	ErrNoFootways = errors.New("no footway nodes indexed")

	// ErrPointTooFar is returned when the query point is too far from any footway.
	ErrPointTooFar = errors.New("point too far from footway")
)

// Node is a footway node picked as the nearest to a query point.
type Node struct {
	ID   osm.NodeID
	Lat  float64
	Lon  float64
	Dist float64 // meters from the query point
}

// candidateSlack bounds how far past the best exact distance the planar
// search keeps going, to absorb projection error.
const candidateSlack = 1.01

// Snapper finds the footway node nearest to a coordinate. Nodes are indexed
// in an R-tree on a plane scaled to meters around the data's mean latitude.
type Snapper struct {
	tr     rtree.RTreeG[osm.NodeID]
	lat    map[osm.NodeID]float64
	lon    map[osm.NodeID]float64
	cosLat float64

	// MaxDistanceMeters rejects matches farther than this. Zero disables the limit.
	MaxDistanceMeters float64
}

// NewSnapper indexes every footway node with known coordinates.
func NewSnapper(result *osmparser.ParseResult) *Snapper {
	s := &Snapper{
		lat: make(map[osm.NodeID]float64),
		lon: make(map[osm.NodeID]float64),
	}

	var sumLat float64
	for _, fw := range result.Footways {
		for _, id := range fw.Nodes {
			if _, seen := s.lat[id]; seen {
				continue
			}
			lat, lon, ok := result.Coords(id)
			if !ok {
				continue
			}
			s.lat[id] = lat
			s.lon[id] = lon
			sumLat += lat
		}
	}

	s.cosLat = 1
	if len(s.lat) > 0 {
		s.cosLat = math.Cos(sumLat / float64(len(s.lat)) * math.Pi / 180)
	}

	for id, lat := range s.lat {
		p := s.project(lat, s.lon[id])
		s.tr.Insert(p, p, id)
	}

	return s
}

// Len returns the number of indexed nodes.
func (s *Snapper) Len() int {
	return s.tr.Len()
}

// Coords returns the coordinates of an indexed node.
func (s *Snapper) Coords(id osm.NodeID) (lat, lon float64, ok bool) {
	lat, ok = s.lat[id]
	if !ok {
		return 0, 0, false
	}
	return lat, s.lon[id], true
}

func (s *Snapper) project(lat, lon float64) [2]float64 {
	return [2]float64{
		lon * s.cosLat * geo.MetersPerDegree,
		lat * geo.MetersPerDegree,
	}
}

// Nearest returns the footway node closest to (lat, lng) by great-circle
// distance. Ties go to the smaller node ID.
func (s *Snapper) Nearest(lat, lng float64) (Node, error) {
	if s.tr.Len() == 0 {
		return Node{}, ErrNoFootways
	}

	q := s.project(lat, lng)
	best := Node{Dist: math.Inf(1)}

	s.tr.Nearby(
		rtree.BoxDist[float64, osm.NodeID](q, q, nil),
		func(_, _ [2]float64, id osm.NodeID, _ float64) bool {
			nLat, nLon := s.lat[id], s.lon[id]

			// Candidates arrive in planar order; stop once they are clearly
			// farther than the best exact match.
			if geo.EquirectangularDist(lat, lng, nLat, nLon) > best.Dist*candidateSlack+1 {
				return false
			}

			d := geo.Haversine(lat, lng, nLat, nLon)
			if d < best.Dist || (d == best.Dist && id < best.ID) {
				best = Node{ID: id, Lat: nLat, Lon: nLon, Dist: d}
			}
			return true
		},
	)

	if s.MaxDistanceMeters > 0 && best.Dist > s.MaxDistanceMeters {
		return Node{}, fmt.Errorf("%.0fm from (%f, %f): %w", best.Dist, lat, lng, ErrPointTooFar)
	}

	return best, nil
}
