package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"j5.nz/ertgcore/config"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := config.Default()
	if cfg.Reductions != want.Reductions {
		t.Errorf("Reductions = %+v, want %+v", cfg.Reductions, want.Reductions)
	}
	if cfg.LogLevel != want.LogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, want.LogLevel)
	}
}

const validYAML = `
reductions:
  default: 4000
  fetch_opcode_cost: 2
heap_retry:
  initial_interval: 5ms
  max_interval: 200ms
  max_retries: 10
log_level: debug
`

func TestLoadValid(t *testing.T) {
	path := writeTemp(t, validYAML)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Reductions.Default != 4000 {
		t.Errorf("Reductions.Default = %d, want 4000", cfg.Reductions.Default)
	}
	if cfg.Reductions.FetchOpcodeCost != 2 {
		t.Errorf("Reductions.FetchOpcodeCost = %d, want 2", cfg.Reductions.FetchOpcodeCost)
	}
	if cfg.HeapRetry.MaxRetries != 10 {
		t.Errorf("HeapRetry.MaxRetries = %d, want 10", cfg.HeapRetry.MaxRetries)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadInvalidLogLevel(t *testing.T) {
	path := writeTemp(t, `log_level: "very loud"`)
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected an error for an invalid log_level")
	}
}

func TestLoadInvalidReductions(t *testing.T) {
	path := writeTemp(t, "reductions:\n  default: 0\n")
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected an error for a non-positive reductions.default")
	}
}
