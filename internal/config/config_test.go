package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Cache.TTLHours != 24 {
		t.Errorf("TTLHours = %d, want 24", cfg.Cache.TTLHours)
	}
	if cfg.Retry.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", cfg.Retry.Attempts)
	}
	if cfg.Monitor.SlowThresholdSeconds != 10 {
		t.Errorf("SlowThresholdSeconds = %d, want 10", cfg.Monitor.SlowThresholdSeconds)
	}
	if cfg.Output.Color != "auto" {
		t.Errorf("Color = %q, want auto", cfg.Output.Color)
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := Default()

	if cfg.TTL() != 24*time.Hour {
		t.Errorf("TTL() = %v", cfg.TTL())
	}
	if cfg.SweepInterval() != time.Hour {
		t.Errorf("SweepInterval() = %v", cfg.SweepInterval())
	}
	if cfg.Backoff() != 200*time.Millisecond {
		t.Errorf("Backoff() = %v", cfg.Backoff())
	}
	if cfg.SlowThreshold() != 10*time.Second {
		t.Errorf("SlowThreshold() = %v", cfg.SlowThreshold())
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
catalog_path = "/tmp/profiles.yaml"

[retry]
attempts = 5

[output]
color = "purple"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.CatalogPath != "/tmp/profiles.yaml" {
		t.Errorf("CatalogPath = %q", cfg.CatalogPath)
	}
	if cfg.Retry.Attempts != 5 {
		t.Errorf("Attempts = %d, want 5", cfg.Retry.Attempts)
	}
	// Everything unspecified falls back to defaults.
	if cfg.Cache.TTLHours != 24 {
		t.Errorf("TTLHours = %d, want default 24", cfg.Cache.TTLHours)
	}
	if cfg.Retry.BackoffMS != 200 {
		t.Errorf("BackoffMS = %d, want default 200", cfg.Retry.BackoffMS)
	}
	// Invalid color modes are replaced, not rejected.
	if cfg.Output.Color != "auto" {
		t.Errorf("Color = %q, want auto", cfg.Output.Color)
	}
}

func TestLoadNonExistent(t *testing.T) {
	_, err := Load("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("Expected error for non-existent config")
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.Cache.TTLHours != 24 {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}

	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("cache = }}}"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrDefault(bad); err == nil {
		t.Error("parse errors must not be silently defaulted")
	}
}

func TestPrintRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	want := Default()
	want.CatalogPath = "/srv/profiles.yaml"
	want.Retry.Attempts = 7

	if err := Print(want, &buf); err != nil {
		t.Fatalf("Print: %v", err)
	}

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load printed config: %v", err)
	}
	if got.CatalogPath != want.CatalogPath || got.Retry.Attempts != want.Retry.Attempts {
		t.Errorf("round trip mismatch: got %+v", got)
	}
	if got.Cache.TTLHours != want.Cache.TTLHours || got.Output.Color != want.Output.Color {
		t.Errorf("round trip mismatch: got %+v", got)
	}
}

func TestWatchReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[retry]\nattempts = 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan *Config, 1)
	stop, err := Watch(path, func(cfg *Config) {
		select {
		case changed <- cfg:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer stop()

	if err := os.WriteFile(path, []byte("[retry]\nattempts = 9\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-changed:
		if cfg.Retry.Attempts != 9 {
			t.Errorf("reloaded Attempts = %d, want 9", cfg.Retry.Attempts)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("config change was not observed")
	}
}
