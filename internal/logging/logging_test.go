package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewRejectsBadLevel(t *testing.T) {
	if _, err := New("loud", "text", ""); err == nil {
		t.Error("Expected error for unknown level, got none")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roomview.log")

	log, err := New("warn", "json", path)
	if err != nil {
		t.Fatalf("Failed to build logger: %v", err)
	}
	log.Info("hidden")
	log.Warn("room not found", zap.String("room", "99"))
	_ = log.Sync()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	out := string(content)
	if strings.Contains(out, "hidden") {
		t.Errorf("Info entry should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, `"room":"99"`) {
		t.Errorf("Expected structured room field, got: %s", out)
	}
}
