// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports a human friendly console
// encoding for interactive use and a JSON encoding for machine consumption.
//
// # Task Correlation
//
// Asynchronous utilities hand out a task id per call. The WithTaskID helper attaches
// that id to a logger so every line about a pending computation can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Snippet executed")
//
//	l := logger.WithTaskID(log, id)
//	l.Error("Square failed", zap.Error(err))
package logger
