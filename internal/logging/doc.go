// Package logging provides structured logging for djanbee.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the tool. Output is silent by default so the
// interactive UI stays clean; set DJANBEE_LOG_LEVEL to enable it.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (command lines, file probes, SQL)
//   - Info: Normal operations (project found, service restarted)
//   - Warn: Non-fatal issues (missing requirements file, retries)
//   - Error: Fatal issues (startup failures, critical errors)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Project found",
//	    zap.String("name", "blog"),
//	    zap.String("path", "/srv/blog"),
//	)
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Output Format
//
// Logs are written to stdout in console format (human-readable):
//
//	2025-11-25T10:30:45.123-0800  DEBUG  Command succeeded
//	  command=systemctl
//	  args=[is-active postgresql]
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
