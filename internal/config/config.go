// Package config provides the launcher's TOML configuration and default paths.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Launcher LauncherConfig `toml:"launcher"`
}

// LauncherConfig maps launcher-wide settings. All fields are optional;
// nil means "use the built-in default".
type LauncherConfig struct {
	DBPath      *string `toml:"db-path"`
	CatalogPath *string `toml:"catalog-path"`
	AdminSecret *string `toml:"admin-secret"`
}

// Load reads a TOML config from the given path. A missing file is not an error.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// DBPath resolves the database path, preferring the config value.
func (c FileConfig) DBPath() string {
	if c.Launcher.DBPath != nil && *c.Launcher.DBPath != "" {
		return *c.Launcher.DBPath
	}
	return DefaultDBPath()
}

// CatalogPath resolves the games catalog path, preferring the config value.
func (c FileConfig) CatalogPath() string {
	if c.Launcher.CatalogPath != nil && *c.Launcher.CatalogPath != "" {
		return *c.Launcher.CatalogPath
	}
	return DefaultCatalogPath()
}

// AdminSecret returns the configured admin secret override, or "" when unset.
func (c FileConfig) AdminSecret() string {
	if c.Launcher.AdminSecret != nil {
		return *c.Launcher.AdminSecret
	}
	return ""
}
