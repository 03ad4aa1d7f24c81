// Package logging provides structured logging for the inventory tool.
//
// This package wraps Go's standard log/slog package to provide
// consistent, structured logging across the application.
//
// # Features
//
//   - Text output for development (human-readable)
//   - JSON output for machine-parsable logs
//   - Default fields (service, version) on all log entries
//   - Level-based filtering (debug, info, warn, error)
//   - Thread-safe for concurrent use
//
// # Usage
//
//	logger := logging.New(cfg.Logging, "1.0.0")
//	logger.Info("inventory loaded", "devices", 12)
//	logger.Error("load failed", "error", err)
package logging
