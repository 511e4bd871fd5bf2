// Package config loads and applies the logging configuration for Tessera
// deployments.
//
// Package: config
// Title: Tessera Logging Configuration
// Description: This package reads the logging section of a deployment from
//              TOML or YAML (auto-detected by extension), overlays
//              TESSERA_LOG_* environment variables, and installs the
//              resulting backend and minimum priority on a logger. A
//              polling watcher supports changing the log level of a
//              running process.
// Author: Tessera Core Team
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation
//
// Usage:
//
//	cfg, err := config.Load("/etc/tessera/logging.toml")
//	if err != nil {
//	    cfg = config.FromEnv()
//	}
//	logger := log.New()
//	if err := cfg.Apply(logger); err != nil {
//	    return err
//	}
//	if err := logger.Open(); err != nil {
//	    return err
//	}
package config
