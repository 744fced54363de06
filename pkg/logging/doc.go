// Package logging provides structured logging utilities for the probe.
//
// # Overview
//
// This package wraps the standard library slog package with probe-specific
// defaults and conventions. It supports environment-based log level
// configuration, module/version context injection, and automatic source
// location tracking for debug logs.
//
// All diagnostics go to stderr in JSON format; stdout is reserved for the
// monitoring-plugin status line. Two optional sinks can be attached:
//
//   - a debug log file, holding the full run transcript at DEBUG level
//     regardless of the stderr level (the probe's --debug-log flag);
//   - the systemd journal, for hosts where the supervisor discards plugin
//     stderr (the probe's --journal flag).
//
// # Log Levels
//
// Supported log levels (case-insensitive): DEBUG, INFO (default), WARN or
// WARNING, ERROR. The LOG_LEVEL environment variable controls verbosity when
// no explicit level is given.
//
// # Usage
//
// Setting the default logger:
//
//	logging.SetDefaultStructuredLoggerWithLevel("tempprobe", version, "debug")
//	slog.Info("reading sensors", "binary", bin)
//
// Attaching sinks:
//
//	closeSinks, err := logging.SetDefaultLoggerWithSinks("tempprobe", version, "info",
//	    logging.Sinks{DebugFile: "/tmp/tempprobe-debug.log", Journal: true})
//	if err != nil { ... }
//	defer closeSinks()
//
// # Output Format
//
// Stderr and debug-file records are JSON:
//
//	{"time":"2025-01-15T10:30:00.123Z","level":"INFO","msg":"classified reading",
//	 "module":"tempprobe","version":"v1.0.0","channel":0,"status":"OK"}
package logging
