package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for the inventory tool.
// All configuration is loaded from YAML and can be overridden by
// environment variables.
type Config struct {
	Inventory InventoryConfig `yaml:"inventory"`
	Registry  RegistryConfig  `yaml:"registry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// InventoryConfig locates the flat inventory file.
//
// The file path is deliberately explicit configuration rather than a
// hard-coded constant: deployments point this at their own inventory
// export.
type InventoryConfig struct {
	Path string `yaml:"path"`
}

// RegistryConfig contains registry settings.
type RegistryConfig struct {
	// Capacity bounds the registry. Zero selects the default (15).
	Capacity int `yaml:"capacity"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file and applies environment
// variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: MDINV_SECTION_KEY
// For example: MDINV_INVENTORY_PATH, MDINV_LOG_LEVEL
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		Inventory: InventoryConfig{
			Path: "./data/devices.txt",
		},
		Registry: RegistryConfig{
			Capacity: 15,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Environment variables follow the pattern:
// MDINV_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MDINV_INVENTORY_PATH"); v != "" {
		cfg.Inventory.Path = v
	}
	if v := os.Getenv("MDINV_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("MDINV_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []string

	if c.Inventory.Path == "" {
		errs = append(errs, "inventory.path is required")
	}

	if c.Registry.Capacity < 0 {
		errs = append(errs, "registry.capacity cannot be negative")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging.level %q is not recognised", c.Logging.Level))
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", "json", "text":
	default:
		errs = append(errs, fmt.Sprintf("logging.format %q is not recognised", c.Logging.Format))
	}

	switch strings.ToLower(c.Logging.Output) {
	case "", "stdout", "stderr":
	default:
		errs = append(errs, fmt.Sprintf("logging.output %q is not recognised", c.Logging.Output))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}
