package config

import (
	"os"
	"path/filepath"

	"github.com/verte-zerg/ttaw/internal/model"
)

const appName = "ttaw"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGCacheHome returns the XDG cache home or a default fallback.
func XDGCacheHome() string {
	if v := os.Getenv("XDG_CACHE_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".cache")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}

// DefaultCachePath returns where the parsed dictionary is kept for format.
func DefaultCachePath(format string) string {
	name := "cmudict.json"
	if format == model.FormatSQLite {
		name = "cmudict.db"
	}
	return filepath.Join(XDGCacheHome(), appName, name)
}
