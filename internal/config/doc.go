// Package config provides 12-factor configuration management for the
// userdirs CLI.
//
// Configuration is loaded from environment variables with sensible
// defaults.
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	logger, _ := logging.New(logging.Config(cfg.Logging))
//
// Environment Variables:
//   - LOG_LEVEL, LOG_DEV
package config
