package osm

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
)

// Footway is a walkable way: an ordered sequence of node IDs.
type Footway struct {
	ID    osm.WayID
	Nodes []osm.NodeID
}

// Building is a named point of interest placed at the centroid of its outline.
type Building struct {
	ID       osm.WayID
	Fullname string
	Abbrev   string
	Lat      float64
	Lon      float64
}

// ParseResult holds the output of parsing an OSM file.
type ParseResult struct {
	Footways  []Footway
	Buildings []Building
	NodeLat   map[osm.NodeID]float64
	NodeLon   map[osm.NodeID]float64
}

// Coords returns the coordinates of node id, if known.
func (r *ParseResult) Coords(id osm.NodeID) (lat, lon float64, ok bool) {
	lat, ok = r.NodeLat[id]
	if !ok {
		return 0, 0, false
	}
	return lat, r.NodeLon[id], true
}

// walkableHighways lists highway tag values a pedestrian may use.
var walkableHighways = map[string]bool{
	"footway":       true,
	"path":          true,
	"pedestrian":    true,
	"steps":         true,
	"corridor":      true,
	"living_street": true,
	"residential":   true,
	"service":       true,
	"track":         true,
	"unclassified":  true,
	"cycleway":      true,
	"crossing":      true,
}

// isWalkable returns true if the way can be walked.
func isWalkable(tags osm.Tags) bool {
	hw := tags.Find("highway")
	if !walkableHighways[hw] {
		return false
	}

	// Skip area highways; their outline is not a path.
	if tags.Find("area") == "yes" {
		return false
	}

	foot := tags.Find("foot")
	if foot == "no" {
		return false
	}
	if foot == "yes" || foot == "designated" {
		return true
	}

	access := tags.Find("access")
	if access == "no" || access == "private" {
		return false
	}

	return true
}

// abbreviation returns the short name of a building: the short_name tag if
// present, else a trailing parenthesised token of the full name.
func abbreviation(tags osm.Tags) string {
	if s := strings.TrimSpace(tags.Find("short_name")); s != "" {
		return s
	}
	name := strings.TrimSpace(tags.Find("name"))
	if !strings.HasSuffix(name, ")") {
		return ""
	}
	open := strings.LastIndex(name, "(")
	if open < 0 {
		return ""
	}
	return strings.TrimSpace(name[open+1 : len(name)-1])
}

// Format selects the OSM encoding to read.
type Format int

const (
	// FormatXML is the plain .osm XML export.
	FormatXML Format = iota
	// FormatPBF is the protobuf-based .osm.pbf format.
	FormatPBF
)

func (f Format) String() string {
	if f == FormatPBF {
		return "pbf"
	}
	return "xml"
}

// FormatFromPath guesses the format from a file name.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".pbf") {
		return FormatPBF
	}
	return FormatXML
}

// BBox defines a geographic bounding box for filtering.
// If non-zero, only nodes inside the box keep their coordinates.
type BBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// IsZero returns true if the bbox is unset.
func (b BBox) IsZero() bool {
	return b.MinLat == 0 && b.MaxLat == 0 && b.MinLng == 0 && b.MaxLng == 0
}

// Contains returns true if the point is inside the bounding box.
func (b BBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// ParseOptions configures the OSM parser.
type ParseOptions struct {
	Format Format
	BBox   BBox // if non-zero, drop nodes outside this bounding box

	// BuildingValues lists the building=* values treated as points of
	// interest. Defaults to "university".
	BuildingValues []string

	// ReferencedOnly keeps coordinates only for nodes used by a footway or
	// building. By default every node in the file is kept.
	ReferencedOnly bool
}

func (o ParseOptions) buildingValues() map[string]bool {
	values := o.BuildingValues
	if len(values) == 0 {
		values = []string{"university"}
	}
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}

// buildingWay holds a building outline collected during Pass 1.
type buildingWay struct {
	ID       osm.WayID
	Fullname string
	Abbrev   string
	NodeIDs  []osm.NodeID
}

func newScanner(ctx context.Context, r io.Reader, format Format, skipNodes, skipWays bool) osm.Scanner {
	if format == FormatPBF {
		s := osmpbf.New(ctx, r, 1)
		s.SkipNodes = skipNodes
		s.SkipWays = skipWays
		s.SkipRelations = true
		return s
	}
	return osmxml.New(ctx, r)
}

// Parse reads an OSM file and returns its footways, buildings and node
// coordinates. The reader is consumed twice (seeks back to start for the
// second pass), so it must implement io.ReadSeeker.
func Parse(ctx context.Context, rs io.ReadSeeker, opts ...ParseOptions) (*ParseResult, error) {
	var opt ParseOptions
	if len(opts) > 0 {
		opt = opts[0]
	}
	useBBox := !opt.BBox.IsZero()
	buildingValues := opt.buildingValues()

	// Pass 1: Scan ways to collect footways, building outlines and the node
	// IDs they reference.
	referencedNodes := make(map[osm.NodeID]struct{})
	var footways []Footway
	var outlines []buildingWay

	scanner := newScanner(ctx, rs, opt.Format, true, false)
	for scanner.Scan() {
		w, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}

		switch {
		case isWalkable(w.Tags):
			if len(w.Nodes) < 2 {
				continue
			}
			nodeIDs := w.Nodes.NodeIDs()
			for _, id := range nodeIDs {
				referencedNodes[id] = struct{}{}
			}
			footways = append(footways, Footway{ID: w.ID, Nodes: nodeIDs})

		case buildingValues[w.Tags.Find("building")]:
			name := strings.TrimSpace(w.Tags.Find("name"))
			if name == "" || len(w.Nodes) == 0 {
				continue
			}
			nodeIDs := w.Nodes.NodeIDs()
			for _, id := range nodeIDs {
				referencedNodes[id] = struct{}{}
			}
			outlines = append(outlines, buildingWay{
				ID:       w.ID,
				Fullname: name,
				Abbrev:   abbreviation(w.Tags),
				NodeIDs:  nodeIDs,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, fmt.Errorf("pass 1 (ways): %w", err)
	}
	scanner.Close()

	log.Printf("Pass 1 complete: %d footways, %d buildings, %d referenced nodes",
		len(footways), len(outlines), len(referencedNodes))

	// Pass 2: Scan nodes to collect coordinates.
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek for pass 2: %w", err)
	}

	nodeLat := make(map[osm.NodeID]float64, len(referencedNodes))
	nodeLon := make(map[osm.NodeID]float64, len(referencedNodes))
	var bboxFiltered int

	scanner = newScanner(ctx, rs, opt.Format, false, true)
	for scanner.Scan() {
		n, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}

		if opt.ReferencedOnly {
			if _, needed := referencedNodes[n.ID]; !needed {
				continue
			}
		}

		if useBBox && !opt.BBox.Contains(n.Lat, n.Lon) {
			bboxFiltered++
			continue
		}

		nodeLat[n.ID] = n.Lat
		nodeLon[n.ID] = n.Lon
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, fmt.Errorf("pass 2 (nodes): %w", err)
	}
	scanner.Close()

	log.Printf("Pass 2 complete: %d node coordinates collected", len(nodeLat))
	if bboxFiltered > 0 {
		log.Printf("Filtered %d nodes outside bounding box", bboxFiltered)
	}

	result := &ParseResult{
		Footways: footways,
		NodeLat:  nodeLat,
		NodeLon:  nodeLon,
	}

	var unplaced int
	for _, b := range outlines {
		lat, lon, ok := centroid(result, b.NodeIDs)
		if !ok {
			unplaced++
			continue
		}
		result.Buildings = append(result.Buildings, Building{
			ID:       b.ID,
			Fullname: b.Fullname,
			Abbrev:   b.Abbrev,
			Lat:      lat,
			Lon:      lon,
		})
	}
	if unplaced > 0 {
		log.Printf("Warning: skipped %d buildings with no known node coordinates", unplaced)
	}

	return result, nil
}

// centroid returns the mean position of the known nodes of an outline.
// A closing node that repeats the first one is counted once.
func centroid(r *ParseResult, nodeIDs []osm.NodeID) (lat, lon float64, ok bool) {
	if n := len(nodeIDs); n > 1 && nodeIDs[0] == nodeIDs[n-1] {
		nodeIDs = nodeIDs[:n-1]
	}

	points := make(orb.MultiPoint, 0, len(nodeIDs))
	for _, id := range nodeIDs {
		if lat, lon, known := r.Coords(id); known {
			points = append(points, orb.Point{lon, lat})
		}
	}
	if len(points) == 0 {
		return 0, 0, false
	}

	c, _ := planar.CentroidArea(points)
	return c.Lat(), c.Lon(), true
}

// ParseBBox parses "minLat,minLng,maxLat,maxLng".
func ParseBBox(s string) (BBox, error) {
	var b BBox
	if _, err := fmt.Sscanf(s, "%f,%f,%f,%f", &b.MinLat, &b.MinLng, &b.MaxLat, &b.MaxLng); err != nil {
		return BBox{}, fmt.Errorf("invalid bbox %q (expected minLat,minLng,maxLat,maxLng): %w", s, err)
	}
	if b.MinLat > b.MaxLat || b.MinLng > b.MaxLng {
		return BBox{}, fmt.Errorf("invalid bbox %q: min exceeds max", s)
	}
	return b, nil
}

// ParseFile opens path and parses it, picking the format from the file
// extension.
func ParseFile(ctx context.Context, path string, opts ParseOptions) (*ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	opts.Format = FormatFromPath(path)
	result, err := Parse(ctx, f, opts)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return result, nil
}
