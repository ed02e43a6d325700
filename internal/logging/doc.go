// Package logging provides structured logging using uber/zap.
//
// This package offers two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// The directory accessor logs its warm-up diagnostics at Debug, so the
// development mode is the one that actually shows them.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("Resolved config dir", zap.String("path", dir))
package logging
