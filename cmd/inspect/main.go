package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"walk_router/pkg/campus"
	osmparser "walk_router/pkg/osm"
)

func main() {
	input := flag.String("input", "", "Path to .osm or .osm.pbf file")
	bbox := flag.String("bbox", "", "Bounding box filter: minLat,minLng,maxLat,maxLng (e.g. 41.86,-87.68,41.88,-87.64)")
	referenced := flag.Bool("referenced-only", false, "Keep coordinates only for nodes used by footways and buildings")
	dump := flag.Bool("dump", false, "Print the footway graph to stdout")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect --input <map.osm|map.osm.pbf> [--bbox minLat,minLng,maxLat,maxLng] [--referenced-only] [--dump]")
		os.Exit(1)
	}

	// Parse bbox option.
	opts := osmparser.ParseOptions{ReferencedOnly: *referenced}
	if *bbox != "" {
		b, err := osmparser.ParseBBox(*bbox)
		if err != nil {
			log.Fatalf("Invalid bbox: %v", err)
		}
		opts.BBox = b
		log.Printf("Using bounding box filter: lat [%.4f, %.4f], lng [%.4f, %.4f]", b.MinLat, b.MaxLat, b.MinLng, b.MaxLng)
	}

	start := time.Now()

	log.Printf("Parsing %s...", *input)
	c, err := campus.Load(context.Background(), *input, campus.Options{Parse: opts})
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}

	s := c.Stats()
	unnamed := 0
	for _, b := range c.Directory.All() {
		if b.Abbrev == "" {
			unnamed++
		}
	}
	log.Printf("Buildings: %s (%s without abbreviation)", humanize.Comma(int64(s.Buildings)), humanize.Comma(int64(unnamed)))

	if *dump {
		if err := c.Graph.Dump(os.Stdout); err != nil {
			log.Fatalf("Failed to dump graph: %v", err)
		}
	}

	log.Printf("Done in %s", time.Since(start).Round(time.Millisecond))
}
