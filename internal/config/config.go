// Package config loads the sitescope configuration from TOML, applying
// defaults for anything the file leaves out.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config represents the main configuration
type Config struct {
	CatalogPath string        `toml:"catalog_path"`
	Cache       CacheConfig   `toml:"cache"`
	Retry       RetryConfig   `toml:"retry"`
	Monitor     MonitorConfig `toml:"monitor"`
	Output      OutputConfig  `toml:"output"`
}

// CacheConfig controls the insights cache.
type CacheConfig struct {
	TTLHours     int `toml:"ttl_hours"`
	SweepMinutes int `toml:"sweep_minutes"`
}

// RetryConfig controls the insights generation retry loop.
type RetryConfig struct {
	Attempts  int `toml:"attempts"`
	BackoffMS int `toml:"backoff_ms"`
}

// MonitorConfig controls the performance monitor.
type MonitorConfig struct {
	SlowThresholdSeconds int `toml:"slow_threshold_seconds"`
}

// OutputConfig holds terminal output settings.
type OutputConfig struct {
	// Color is "auto", "always" or "never".
	Color string `toml:"color"`
}

// DefaultPath returns the default config file path
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sitescope", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "sitescope", "config.toml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Cache: CacheConfig{
			TTLHours:     24,
			SweepMinutes: 60,
		},
		Retry: RetryConfig{
			Attempts:  3,
			BackoffMS: 200,
		},
		Monitor: MonitorConfig{
			SlowThresholdSeconds: 10,
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// TTL returns the cache entry lifetime.
func (c *Config) TTL() time.Duration {
	return time.Duration(c.Cache.TTLHours) * time.Hour
}

// SweepInterval returns how often expired cache entries are swept.
func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.Cache.SweepMinutes) * time.Minute
}

// Backoff returns the base delay of the retry loop.
func (c *Config) Backoff() time.Duration {
	return time.Duration(c.Retry.BackoffMS) * time.Millisecond
}

// SlowThreshold returns the duration above which an operation is logged
// as slow.
func (c *Config) SlowThreshold() time.Duration {
	return time.Duration(c.Monitor.SlowThresholdSeconds) * time.Second
}

// Load reads a config file. An empty path means the default location.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults for missing values
	def := Default()
	if cfg.Cache.TTLHours <= 0 {
		cfg.Cache.TTLHours = def.Cache.TTLHours
	}
	if cfg.Cache.SweepMinutes <= 0 {
		cfg.Cache.SweepMinutes = def.Cache.SweepMinutes
	}
	if cfg.Retry.Attempts <= 0 {
		cfg.Retry.Attempts = def.Retry.Attempts
	}
	if cfg.Retry.BackoffMS <= 0 {
		cfg.Retry.BackoffMS = def.Retry.BackoffMS
	}
	if cfg.Monitor.SlowThresholdSeconds <= 0 {
		cfg.Monitor.SlowThresholdSeconds = def.Monitor.SlowThresholdSeconds
	}
	switch cfg.Output.Color {
	case "auto", "always", "never":
	default:
		cfg.Output.Color = def.Output.Color
	}

	return &cfg, nil
}

// LoadOrDefault loads the config from path, falling back to defaults
// when the file does not exist. Parse errors still fail.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// CreateDefault creates a default config file
func CreateDefault() (string, error) {
	path := DefaultPath()

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config file already exists: %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := Print(Default(), f); err != nil {
		return "", err
	}

	return path, nil
}

// Print writes config to a writer in TOML format
func Print(cfg *Config, w io.Writer) error {
	fmt.Fprintln(w, "# sitescope configuration")
	fmt.Fprintln(w, "# https://github.com/Dicklesworthstone/sitescope")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "# Path to a custom technology profile dataset (YAML).")
	fmt.Fprintln(w, "# Empty uses the embedded catalog.")
	fmt.Fprintf(w, "catalog_path = %q\n", cfg.CatalogPath)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[cache]")
	fmt.Fprintln(w, "# Insights cache entry lifetime and sweep cadence")
	fmt.Fprintf(w, "ttl_hours = %d\n", cfg.Cache.TTLHours)
	fmt.Fprintf(w, "sweep_minutes = %d\n", cfg.Cache.SweepMinutes)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[retry]")
	fmt.Fprintln(w, "# Insights generation retry loop")
	fmt.Fprintf(w, "attempts = %d\n", cfg.Retry.Attempts)
	fmt.Fprintf(w, "backoff_ms = %d\n", cfg.Retry.BackoffMS)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[monitor]")
	fmt.Fprintf(w, "slow_threshold_seconds = %d\n", cfg.Monitor.SlowThresholdSeconds)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[output]")
	fmt.Fprintln(w, "# Color mode: auto, always or never")
	fmt.Fprintf(w, "color = %q\n", cfg.Output.Color)

	return nil
}
