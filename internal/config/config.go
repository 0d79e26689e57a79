// Package config loads the tix client configuration from a YAML file,
// an optional .env overlay, and environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the TUI needs to reach the portal API.
type Config struct {
	APIURL string `yaml:"api_url"`
	APIKey string `yaml:"api_key"`
	Tenant string `yaml:"tenant"`

	// DefaultStatuses seeds the status filter before any interaction,
	// mirroring pre-checked server-side defaults.
	DefaultStatuses []string `yaml:"default_statuses"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{APIURL: "http://localhost:8917"}
}

// Path returns the config file location, honoring XDG_CONFIG_HOME.
func Path() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "tix", "config.yaml"), nil
}

// Load reads the config file at path (or the default location when path
// is empty), overlays a .env file from the working directory if present,
// and applies TIX_* environment overrides. A missing config file is not
// an error; defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return cfg, err
		}
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults apply
	default:
		return cfg, err
	}

	// .env is optional; ignore a missing file.
	godotenv.Load()

	if v := os.Getenv("TIX_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("TIX_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("TIX_TENANT"); v != "" {
		cfg.Tenant = v
	}

	return cfg, nil
}
