// Package logging provides structured logging utilities for the meetfinder application.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - PII sanitization (account/attendee anonymization)
//   - Consistent attribute naming across the codebase
//   - Logger adapter interface for flexibility
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "slot.find")
//	logger.Info("search finished",
//	    logging.Status("success"))
//
// Sanitize sensitive data before logging:
//
//	logger.Info("freebusy query",
//	    logging.AccountHash(attendee))
//
// # Security Considerations
//
// Attendee email addresses are hashed before logging to prevent PII leakage
// while still allowing correlation of log entries.
package logging
