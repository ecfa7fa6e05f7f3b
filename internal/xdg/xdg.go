// Package xdg resolves XDG Base Directory paths for logfire.
//
// The CLI keeps non-secret settings in the XDG config dir and falls back to
// ~/.config/logfire when XDG_CONFIG_HOME is unset. Directories are created
// with private permissions.
package xdg

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the XDG config directory for logfire, creating it with
// 0700 permissions if missing.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, "logfire")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}
