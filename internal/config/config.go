// Package config loads odcheck configuration from config files and
// environment variables via koanf, then validates the result.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the odcheck CLI tool configuration.
type Configuration struct {
	ProductFile  string `koanf:"product_file" validate:"required"`
	ContractsDir string `koanf:"contracts_dir" validate:"required"`

	// SchemaDir, when set, overrides the bundled schemas with
	// odps-schema-v4.0.json / odcs-schema-v3.0.json from that directory.
	SchemaDir string `koanf:"schema_dir"`

	ListenAddr   string `koanf:"listen_addr" validate:"required,hostname_port"`
	ShowProgress bool   `koanf:"show_progress"`
}

// Load loads configuration from global, local, and environment sources.
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	// Global config under the user's home, if present
	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".odcheck", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Local config, if present
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Environment variables take highest priority
	k.Load(env.Provider("ODCHECK_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.ProductFile = expandHomePath(cfg.ProductFile)
	cfg.ContractsDir = expandHomePath(cfg.ContractsDir)
	cfg.SchemaDir = expandHomePath(cfg.SchemaDir)

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: ODCHECK_CONTRACTS_DIR -> contracts_dir
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "ODCHECK_"))
}

// expandHomePath expands ~ to the user's home directory.
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
