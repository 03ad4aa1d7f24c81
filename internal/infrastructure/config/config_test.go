package config

import (
	"os"
	"path/filepath"
	"testing"
)

// writeConfig writes a config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
inventory:
  path: "/srv/mdltd/devices.txt"
registry:
  capacity: 10
logging:
  level: debug
  format: json
  output: stderr
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Inventory.Path != "/srv/mdltd/devices.txt" {
		t.Errorf("Inventory.Path = %q, want %q", cfg.Inventory.Path, "/srv/mdltd/devices.txt")
	}
	if cfg.Registry.Capacity != 10 {
		t.Errorf("Registry.Capacity = %d, want 10", cfg.Registry.Capacity)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
inventory:
  path: "./data/devices.txt"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Registry.Capacity != 15 {
		t.Errorf("Registry.Capacity = %d, want default 15", cfg.Registry.Capacity)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want default %q", cfg.Logging.Level, "info")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "inventory: [not: a: mapping")
	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
inventory:
  path: "./data/devices.txt"
logging:
  level: info
`)

	t.Setenv("MDINV_INVENTORY_PATH", "/override/devices.txt")
	t.Setenv("MDINV_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Inventory.Path != "/override/devices.txt" {
		t.Errorf("Inventory.Path = %q, want env override", cfg.Inventory.Path)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want env override %q", cfg.Logging.Level, "debug")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "empty inventory path",
			mutate:  func(c *Config) { c.Inventory.Path = "" },
			wantErr: true,
		},
		{
			name:    "negative capacity",
			mutate:  func(c *Config) { c.Registry.Capacity = -1 },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: true,
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "unknown log output",
			mutate:  func(c *Config) { c.Logging.Output = "file" },
			wantErr: true,
		},
		{
			name:    "zero capacity selects default downstream",
			mutate:  func(c *Config) { c.Registry.Capacity = 0 },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %t", err, tt.wantErr)
			}
		})
	}
}
