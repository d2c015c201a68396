// Package config resolves application settings from viper.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// AppName names the config and data directories.
const AppName = "dataact"

// ExpandPath expands a leading ~ and environment variables in a file path.
// If the home directory is unknown the ~ is left in place.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return os.ExpandEnv(path)
}

// xdgDir returns $envVar/dataact, or ~/fallback/dataact when envVar is unset
// or not absolute.
func xdgDir(envVar, fallback string) string {
	if base := os.Getenv(envVar); filepath.IsAbs(base) {
		return filepath.Join(base, AppName)
	}
	return ExpandPath(filepath.Join("~", fallback, AppName))
}

// DefaultDatabasePath is the database location when database.path is unset.
func DefaultDatabasePath() string {
	return filepath.Join(xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share")), AppName+".db")
}

// ConfigDir is the directory searched for config.yaml.
func ConfigDir() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}
