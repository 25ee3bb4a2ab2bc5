// Package config loads and validates the daemon's TOML configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DaemonConfig is the top-level daemon configuration, read from a TOML file
// (daemon.toml by default).
type DaemonConfig struct {
	Name        string   `toml:"name"`
	SchemaFiles []string `toml:"schema_files"`

	// Schema-compatibility flags; both are folded into the schema
	// fingerprint, so every process in a cluster must agree on them.
	VirtualInheritance    bool `toml:"virtual_inheritance"`
	SortInheritanceByFile bool `toml:"sort_inheritance_by_file"`
}

// LoadDaemonConfig reads, defaults and validates a daemon configuration.
func LoadDaemonConfig(path string) (DaemonConfig, error) {
	var cfg DaemonConfig
	if err := loadToml(path, &cfg); err != nil {
		return DaemonConfig{}, err
	}
	if cfg.Name == "" {
		cfg.Name = "dcnetd"
	}
	if err := ValidateDaemonConfig(cfg); err != nil {
		return DaemonConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

// ValidateDaemonConfig rejects configurations the daemon cannot start with.
func ValidateDaemonConfig(cfg DaemonConfig) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("daemon config missing name")
	}
	if len(cfg.SchemaFiles) == 0 {
		return fmt.Errorf("daemon config missing schema_files")
	}
	for i, path := range cfg.SchemaFiles {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("schema_files[%d] is empty", i)
		}
	}
	return nil
}
