package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load defaults: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults %+v, got %+v", Default(), cfg)
	}
	if cfg.GridWidth != 100 || cfg.GridHeight != 100 {
		t.Errorf("Expected 100x100 grid, got %dx%d", cfg.GridWidth, cfg.GridHeight)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ROOMVIEW_START_ROOM", "2")
	t.Setenv("ROOMVIEW_GRID_WIDTH", "40")
	t.Setenv("ROOMVIEW_GRID_HEIGHT", "20")
	t.Setenv("ROOMVIEW_TILE_BACKEND", "ecs")
	t.Setenv("ROOMVIEW_TELEMETRY", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.StartRoom != "2" {
		t.Errorf("Expected start room '2', got %q", cfg.StartRoom)
	}
	if cfg.GridWidth != 40 || cfg.GridHeight != 20 {
		t.Errorf("Expected 40x20 grid, got %dx%d", cfg.GridWidth, cfg.GridHeight)
	}
	if cfg.TileBackend != BackendECS {
		t.Errorf("Expected ecs backend, got %q", cfg.TileBackend)
	}
	if !cfg.Telemetry {
		t.Error("Expected telemetry enabled")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"ROOMVIEW_GRID_WIDTH", "wide"},
		{"ROOMVIEW_GRID_HEIGHT", "0"},
		{"ROOMVIEW_TILE_BACKEND", "opengl"},
		{"ROOMVIEW_TELEMETRY", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("%s=%q should be rejected", tt.key, tt.value)
			}
		})
	}
}
