package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"walk_router/pkg/api"
	"walk_router/pkg/campus"
	"walk_router/pkg/config"
)

func main() {
	configPath := flag.String("config", "", "Path to TOML config file (optional)")
	mapPath := flag.String("map", "", "Path to .osm or .osm.pbf map (overrides config)")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	corsOrigin := flag.String("cors-origin", "", "CORS allowed origin (empty = same-origin)")
	maxSnap := flag.Float64("max-snap", -1, "Max meters from a building to a footway, 0 = unlimited (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *mapPath != "" {
		cfg.Map.File = *mapPath
	}
	if *port != 0 {
		cfg.Server.Addr = fmt.Sprintf(":%d", *port)
	}
	if *corsOrigin != "" {
		cfg.Server.CORSOrigin = *corsOrigin
	}
	if *maxSnap >= 0 {
		cfg.Map.MaxSnapMeters = *maxSnap
	}

	if l := cfg.Logging.SetLogger(); l != nil {
		defer l.Close()
	}

	parseOpts, err := cfg.Map.ParseOptions()
	if err != nil {
		log.Fatalf("Invalid map config: %v", err)
	}

	start := time.Now()

	// Load map and build the footway graph.
	log.Printf("Loading map from %s...", cfg.Map.File)
	c, err := campus.Load(context.Background(), cfg.Map.File, campus.Options{
		Parse:         parseOpts,
		MaxSnapMeters: cfg.Map.MaxSnapMeters,
	})
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}
	s := c.Stats()

	log.Printf("Ready in %s", time.Since(start).Round(time.Millisecond))

	// Setup HTTP server.
	srvCfg := api.DefaultConfig(cfg.Server.Addr)
	srvCfg.CORSOrigin = cfg.Server.CORSOrigin
	if cfg.Server.ReadTimeout > 0 {
		srvCfg.ReadTimeout = time.Duration(cfg.Server.ReadTimeout) * time.Second
	}
	if cfg.Server.WriteTimeout > 0 {
		srvCfg.WriteTimeout = time.Duration(cfg.Server.WriteTimeout) * time.Second
	}
	if cfg.Server.RequestTimeout > 0 {
		srvCfg.RequestTimeout = time.Duration(cfg.Server.RequestTimeout) * time.Second
	}
	if cfg.Server.MaxConcurrent > 0 {
		srvCfg.MaxConcurrent = cfg.Server.MaxConcurrent
	}

	stats := api.StatsResponse{
		NumNodes:         s.Nodes,
		NumFootways:      s.Footways,
		NumBuildings:     s.Buildings,
		NumVertices:      s.Vertices,
		NumEdges:         s.Edges,
		LargestComponent: s.LargestComponent,
	}

	handlers := api.NewHandlers(c.Engine, c.Directory, stats)
	srv := api.NewServer(srvCfg, handlers)

	if err := api.ListenAndServe(srv); err != nil {
		log.Printf("Server stopped: %v", err)
		os.Exit(1)
	}
}
