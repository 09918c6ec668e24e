// Package logging provides structured logging utilities for TailorTalk.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "calendar.create")
//	logger.Info("event created", logging.Status(logging.StatusSuccess))
//
// Errors are safe to attach even when nil:
//
//	logger.Info("turn finished", logging.Err(err))
package logging
