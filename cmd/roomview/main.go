// Package main is the entry point for roomview, a terminal preview of room layouts.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/roomlayout/internal/config"
	"github.com/samdwyer/roomlayout/internal/gamedata"
	"github.com/samdwyer/roomlayout/internal/layout"
	"github.com/samdwyer/roomlayout/internal/logging"
	"github.com/samdwyer/roomlayout/internal/telemetry"
	"github.com/samdwyer/roomlayout/internal/texture"
	"github.com/samdwyer/roomlayout/internal/tiles"
	"github.com/samdwyer/roomlayout/internal/ui"
	"github.com/samdwyer/roomlayout/internal/viewer"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	flag.StringVar(&cfg.RoomsFile, "rooms", cfg.RoomsFile, "room markup document (default: embedded rooms.xml)")
	flag.StringVar(&cfg.StartRoom, "room", cfg.StartRoom, "room to build first")
	flag.StringVar(&cfg.TMXDir, "tmx", cfg.TMXDir, "directory of Tiled .tmx rooms to add")
	flag.StringVar(&cfg.TileBackend, "backend", cfg.TileBackend, "tile factory: basic or ecs")
	dump := flag.Bool("dump", false, "print the room grid and exit")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := run(cfg, *dump); err != nil {
		fmt.Fprintf(os.Stderr, "roomview: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, dump bool) error {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	if cfg.Telemetry {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Warn("telemetry setup failed, continuing without tracing", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Warn("telemetry shutdown failed", zap.Error(err))
				}
			}()
		}
	}

	rooms, err := loadRooms(ctx, cfg)
	if err != nil {
		return err
	}

	textures, err := texture.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load textures: %w", err)
	}

	var (
		factory layout.TileFactory
		ecs     *tiles.ECSFactory
	)
	switch cfg.TileBackend {
	case config.BackendECS:
		ecs = tiles.NewECSFactory(textures, logger)
		factory = ecs
	default:
		factory = tiles.NewFactory(textures, logger)
	}

	builder := layout.NewBuilder(factory, layout.WithExtent(cfg.GridWidth, cfg.GridHeight))
	registry := layout.NewRegistry(rooms, builder, cfg.StartRoom, logger)
	logger.Info("rooms loaded",
		zap.Int("rooms", registry.Len()),
		zap.String("backend", cfg.TileBackend),
	)

	if dump {
		grid, err := registry.BuildCurrent(ctx)
		if err != nil {
			return err
		}
		if ecs != nil {
			logger.Info("tile entities", zap.Int("entities", ecs.Count()))
		}
		fmt.Println(grid.String())
		return nil
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer screen.Close()

	app := viewer.New(screen, ui.NewRenderer(screen), registry, logger)
	return app.Run(ctx)
}

// loadRooms reads the markup document, then appends any Tiled maps.
func loadRooms(ctx context.Context, cfg config.Config) ([]layout.RoomDefinition, error) {
	_, span := telemetry.Tracer("roomview").Start(ctx, "rooms.load")
	defer span.End()

	var (
		r   io.ReadCloser
		err error
	)
	if cfg.RoomsFile != "" {
		r, err = os.Open(cfg.RoomsFile)
	} else {
		r, err = gamedata.Open(gamedata.RoomsFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open rooms: %w", err)
	}
	defer r.Close()

	rooms, err := layout.LoadRooms(r)
	if err != nil {
		return nil, err
	}

	if cfg.TMXDir != "" {
		tmxRooms, err := layout.LoadTMXRooms(os.DirFS(cfg.TMXDir), ".")
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, tmxRooms...)
	}

	span.SetAttributes(attribute.Int("rooms.count", len(rooms)))
	return rooms, nil
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is configured
// and no endpoint was set explicitly.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_ROOMVIEW_API_KEY")
	if apiKey == "" {
		return
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	dataset := os.Getenv("HONEYCOMB_ROOMVIEW_DATASET")
	if dataset == "" {
		dataset = "roomview"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
