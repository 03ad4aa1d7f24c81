// MD Ltd. Device Inventory
//
// This is the main entry point for the inventory tool. It loads the
// device inventory from a flat text file into a bounded in-memory
// registry, prints every device, registers one additional smartwatch
// and prints the result again. The whole run is a single synchronous
// pass; there are no servers and no background work.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/mdltd/device-inventory/internal/device"
	"github.com/mdltd/device-inventory/internal/infrastructure/config"
	"github.com/mdltd/device-inventory/internal/infrastructure/logging"
	"github.com/mdltd/device-inventory/internal/inventory"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0"
var version = "dev"

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for
// testability. Inventory output goes to out; logs go wherever the
// logging configuration points them.
func run(out io.Writer) error {
	// Use default logger until config is loaded
	log := logging.Default()

	configPath := getConfigPath()
	log.Debug("loading configuration", "path", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("starting device inventory",
		"version", version,
		"config", configPath,
	)

	registry := device.NewRegistry(cfg.Registry.Capacity)
	registry.SetLogger(log)

	loader := inventory.NewLoader()
	loader.SetLogger(log)

	result, err := loader.LoadFile(cfg.Inventory.Path, registry)
	if err != nil {
		return fmt.Errorf("loading inventory: %w", err)
	}
	log.Info("registry initialised",
		"devices", registry.Len(),
		"skipped", result.Skipped,
		"discarded", result.Discarded,
	)

	fmt.Fprintln(out, "Devices loaded successfully!")
	printAll(out, registry)

	watch, err := device.NewWearable("", "Spare Smartwatch", false, 64, log)
	if err != nil {
		return fmt.Errorf("creating smartwatch: %w", err)
	}

	if err := registry.Add(watch); err != nil {
		return fmt.Errorf("registering smartwatch: %w", err)
	}

	fmt.Fprintln(out, "New device added!")
	printAll(out, registry)

	return nil
}

// printAll writes every device's description to out, one per line,
// in registry order.
func printAll(out io.Writer, registry *device.Registry) {
	for _, line := range registry.Describe() {
		fmt.Fprintln(out, line)
	}
}

// getConfigPath returns the configuration file path.
// Uses the MDINV_CONFIG environment variable if set, otherwise the
// default.
func getConfigPath() string {
	if path := os.Getenv("MDINV_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
