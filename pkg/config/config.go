// Package config loads walk_router settings from a TOML file.
//
// Example:
//
//	[map]
//	file = "uic.osm"
//	building_values = ["university"]
//	max_snap_meters = 0.0
//
//	[server]
//	addr = ":8080"
//	request_timeout = 5
//
//	[logging]
//	logfile = "/var/log/walk_router.log"
//	max_log_size = 500
//	max_log_age = 30
package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/natefinch/lumberjack"

	osmparser "walk_router/pkg/osm"
)

// Config is the full walk_router configuration.
type Config struct {
	Map     MapConfig
	Server  ServerConfig
	Logging LogConfig
}

// MapConfig selects the map and how it is read.
type MapConfig struct {
	File           string   `toml:"file"`
	BuildingValues []string `toml:"building_values"`
	ReferencedOnly bool     `toml:"referenced_only"`
	BBox           string   `toml:"bbox"` // minLat,minLng,maxLat,maxLng
	MaxSnapMeters  float64  `toml:"max_snap_meters"`
}

// ParseOptions converts the map settings into parser options.
func (c MapConfig) ParseOptions() (osmparser.ParseOptions, error) {
	opts := osmparser.ParseOptions{
		BuildingValues: c.BuildingValues,
		ReferencedOnly: c.ReferencedOnly,
	}
	if c.BBox != "" {
		bbox, err := osmparser.ParseBBox(c.BBox)
		if err != nil {
			return opts, err
		}
		opts.BBox = bbox
	}
	return opts, nil
}

// ServerConfig holds HTTP settings. Timeouts are in seconds.
type ServerConfig struct {
	Addr           string `toml:"addr"`
	ReadTimeout    int    `toml:"read_timeout"`
	WriteTimeout   int    `toml:"write_timeout"`
	RequestTimeout int    `toml:"request_timeout"`
	MaxConcurrent  int    `toml:"max_concurrent"`
	CORSOrigin     string `toml:"cors_origin"`
}

// LogConfig sets an optional rotating log file.
type LogConfig struct {
	Logfile string `toml:"logfile"`
	MaxSize int    `toml:"max_log_size"` // megabytes
	MaxAge  int    `toml:"max_log_age"`  // days
}

// SetLogger sends the standard logger to a rotating log file. It returns nil
// and leaves logging on stderr when no file is configured.
func (c *LogConfig) SetLogger() *lumberjack.Logger {
	if c == nil || c.Logfile == "" {
		return nil
	}
	log.Printf("Sending log messages to: %s", c.Logfile)
	l := &lumberjack.Logger{
		Filename: c.Logfile,
		MaxSize:  c.MaxSize, // megabytes
		MaxAge:   c.MaxAge,  // days
	}
	log.SetOutput(l)
	return l
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Map: MapConfig{
			File:           "map.osm",
			BuildingValues: []string{"university"},
		},
		Server: ServerConfig{
			Addr:           ":8080",
			ReadTimeout:    5,
			WriteTimeout:   10,
			RequestTimeout: 5,
		},
		Logging: LogConfig{
			MaxSize: 500,
			MaxAge:  30,
		},
	}
}

// Load reads a TOML file over the defaults. Unknown keys are an error.
func Load(filename string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(filename, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("could not decode TOML config %s: %w", filename, err)
	}
	return cfg, checkUndecoded(md)
}

// Decode parses TOML text over the defaults.
func Decode(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("could not decode TOML config: %w", err)
	}
	return cfg, checkUndecoded(md)
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
}
