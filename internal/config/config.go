// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the token goes to the OS keychain
// or the credentials file in the data dir.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/WillDaSilva/logfire/internal/xdg"
)

// DefaultDataDir is the default token discovery path.
const DefaultDataDir = ".logfire"

// Config holds non-sensitive CLI settings.
type Config struct {
	// BaseURL overrides the Logfire API base URL; empty means the default.
	BaseURL string `json:"base_url"`
	// DataDir is the token discovery path passed to dash.Configure.
	DataDir string `json:"data_dir"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; a missing file returns defaults.
func Load() (Config, error) {
	var c Config
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.DataDir = DefaultDataDir
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
