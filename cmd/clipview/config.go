package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"honnef.co/go/clipshape"
)

const defaultTick = 200 * time.Millisecond

// Config is the viewer's on-disk configuration. Zero values mean defaults.
type Config struct {
	// Tick is the interval between frames, as accepted by
	// time.ParseDuration.
	Tick         string `json:"tick,omitempty"`
	Kind         string `json:"kind,omitempty"`
	Animate      bool   `json:"animate"`
	Mirror       bool   `json:"mirror"`
	PolygonSides int    `json:"polygon_sides,omitempty"`
	CloudPoints  int    `json:"cloud_points,omitempty"`
	BlobPoints   int    `json:"blob_points,omitempty"`
}

func defaultConfig() Config {
	return Config{
		Tick:    defaultTick.String(),
		Kind:    clipshape.KindCircle.String(),
		Animate: true,
	}
}

// loadConfig reads the JSON configuration at path on top of the defaults. A
// missing file is not an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if _, err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

type settings struct {
	tick    time.Duration
	kind    clipshape.Kind
	factory clipshape.Factory
}

// validate resolves the textual fields of the configuration.
func (cfg Config) validate() (settings, error) {
	var s settings
	tick := defaultTick
	if cfg.Tick != "" {
		d, err := time.ParseDuration(cfg.Tick)
		if err != nil {
			return s, fmt.Errorf("invalid tick: %w", err)
		}
		if d <= 0 {
			return s, fmt.Errorf("tick must be positive, got %s", d)
		}
		tick = d
	}
	kind := clipshape.KindCircle
	if cfg.Kind != "" {
		k, err := clipshape.ParseKind(cfg.Kind)
		if err != nil {
			return s, err
		}
		kind = k
	}
	if cfg.PolygonSides < 0 || cfg.CloudPoints < 0 || cfg.BlobPoints < 0 {
		return s, errors.New("point counts must not be negative")
	}
	return settings{
		tick: tick,
		kind: kind,
		factory: clipshape.Factory{
			PolygonSides: cfg.PolygonSides,
			CloudPoints:  cfg.CloudPoints,
			BlobPoints:   cfg.BlobPoints,
		},
	}, nil
}
