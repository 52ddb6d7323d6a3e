package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
)

func main() {
	mapFile := flag.String("map", "", "Path to .osm or .osm.pbf map (prompted for if empty)")
	dump := flag.Bool("dump", false, "Print the footway graph before navigating")
	verbose := flag.Bool("v", false, "Log loading progress to stderr")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	opts := options{mapFile: *mapFile, dump: *dump}
	if err := run(context.Background(), os.Stdin, os.Stdout, opts); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("navigate: %v", err)
	}
}
