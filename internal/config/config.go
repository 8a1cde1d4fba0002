package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "go.yaml.in/yaml/v3"
)

// Config holds the user-tunable settings loaded from the optional
// ~/.cadence/config.yaml file. Every field has a working default so the
// tool runs without any config file at all.
type Config struct {
	// DBPath overrides the database location. Empty means the default
	// under the user's home directory.
	DBPath string `yaml:"db_path,omitempty"`

	// DashboardRefresh is a Go duration string controlling how often the
	// live dashboard recomputes its report (e.g. "30s", "1m").
	DashboardRefresh string `yaml:"dashboard_refresh,omitempty"`

	// NoColor disables ANSI styling in all output.
	NoColor bool `yaml:"no_color,omitempty"`
}

const defaultDashboardRefresh = 30 * time.Second

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{}
}

// Load reads the config file at path. A missing file is not an error;
// the defaults are returned instead.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns the conventional config file location, or "" when
// the home directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cadence", "config.yaml")
}

// RefreshInterval parses DashboardRefresh, falling back to 30 seconds on
// a blank or unparsable value.
func (c Config) RefreshInterval() time.Duration {
	if c.DashboardRefresh == "" {
		return defaultDashboardRefresh
	}
	d, err := time.ParseDuration(c.DashboardRefresh)
	if err != nil || d <= 0 {
		return defaultDashboardRefresh
	}
	return d
}
