// Package config reads roomview settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/roomlayout/internal/layout"
)

// Tile factory backends.
const (
	BackendBasic = "basic"
	BackendECS   = "ecs"
)

// Config holds roomview configuration options.
type Config struct {
	RoomsFile   string // Markup document path; empty means the embedded rooms.xml
	TMXDir      string // Optional directory of Tiled maps added after the markup rooms
	StartRoom   string // Room built at startup
	GridWidth   int    // Grid extent, in cells
	GridHeight  int
	TileBackend string // BackendBasic or BackendECS
	LogLevel    string
	LogFormat   string // "text" or "json"
	LogFile     string // Empty means stderr
	Telemetry   bool   // Export spans over OTLP
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		StartRoom:   "0",
		GridWidth:   layout.DefaultWidth,
		GridHeight:  layout.DefaultHeight,
		TileBackend: BackendBasic,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Load reads ROOMVIEW_* variables over the defaults.
func Load() (Config, error) {
	cfg := Default()

	stringVar(&cfg.RoomsFile, "ROOMVIEW_ROOMS_FILE")
	stringVar(&cfg.TMXDir, "ROOMVIEW_TMX_DIR")
	stringVar(&cfg.StartRoom, "ROOMVIEW_START_ROOM")
	stringVar(&cfg.TileBackend, "ROOMVIEW_TILE_BACKEND")
	stringVar(&cfg.LogLevel, "ROOMVIEW_LOG_LEVEL")
	stringVar(&cfg.LogFormat, "ROOMVIEW_LOG_FORMAT")
	stringVar(&cfg.LogFile, "ROOMVIEW_LOG_FILE")

	if err := intVar(&cfg.GridWidth, "ROOMVIEW_GRID_WIDTH"); err != nil {
		return cfg, err
	}
	if err := intVar(&cfg.GridHeight, "ROOMVIEW_GRID_HEIGHT"); err != nil {
		return cfg, err
	}
	if v := os.Getenv("ROOMVIEW_TELEMETRY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid ROOMVIEW_TELEMETRY %q: %w", v, err)
		}
		cfg.Telemetry = b
	}

	return cfg, cfg.Validate()
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	if c.GridWidth <= 0 || c.GridHeight <= 0 {
		return fmt.Errorf("grid extent must be positive, got %dx%d", c.GridWidth, c.GridHeight)
	}
	switch c.TileBackend {
	case BackendBasic, BackendECS:
	default:
		return fmt.Errorf("unknown tile backend %q", c.TileBackend)
	}
	return nil
}

func stringVar(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func intVar(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}
