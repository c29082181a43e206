package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
endpoint: https://example.test/api.php
state_dir: /tmp/quizo-test
log:
  level: debug
defaults:
  amount: 15
  difficulty: hard
  timer_seconds: 30
category_cache_ttl: 5m
`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Endpoint != "https://example.test/api.php" {
		t.Fatalf("unexpected endpoint: %q", cfg.Endpoint)
	}
	if cfg.Defaults.Amount != 15 || cfg.Defaults.Difficulty != "hard" || cfg.Defaults.TimerSeconds != 30 {
		t.Fatalf("unexpected defaults: %+v", cfg.Defaults)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.Log.Level)
	}
}

func TestLoadMissingFileIsZeroConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing config must not fail: %v", err)
	}
	if cfg.Endpoint != "" || cfg.StateDir != "" {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestTTLDuration(t *testing.T) {
	if d := TTLDuration("", time.Minute); d != time.Minute {
		t.Fatalf("expected fallback, got %v", d)
	}
	if d := TTLDuration("90s", time.Minute); d != 90*time.Second {
		t.Fatalf("expected parsed duration, got %v", d)
	}
	if d := TTLDuration("bogus", time.Minute); d != time.Minute {
		t.Fatalf("expected fallback for invalid input, got %v", d)
	}
}
