// Package cli implements the command-line interface for the tempprobe
// 1-wire temperature monitoring probe.
//
// # Overview
//
// tempprobe is invoked by a monitoring supervisor once per check interval.
// It reads DS18B20-class sensors through the digitemp utility, classifies
// each channel against warning/critical thresholds, and reports a
// monitoring-plugin status line plus the matching exit code.
//
// # Commands
//
// check - run the probe (the supervisor entry point):
//
//	tempprobe check [-w 25.00] [-c 30.00] [--perfdata] [--config FILE]
//
// Prints exactly one line to stdout and exits 0 (OK), 1 (WARNING),
// 2 (CRITICAL), or 3 (UNKNOWN).
//
// read - dump parsed readings for diagnostics:
//
//	tempprobe read [--format yaml|json|table] [--output FILE]
//
// setup - one-time host preparation:
//
//	tempprobe setup [--force]
//
// Loads the w1 kernel modules when missing and walks the 1-wire bus to
// generate the digitemp sensor roster.
//
// # Global Flags
//
//	--log-level   debug, info, warn, error (default: info)
//	--debug-log   path of a JSON debug transcript capturing the full run
//	--journal     mirror diagnostics to the systemd journal
//
// # Environment Variables
//
//	LOG_LEVEL             Logging verbosity when --log-level is not given
//	TEMPPROBE_WARNING     Warning threshold
//	TEMPPROBE_CRITICAL    Critical threshold
//	TEMPPROBE_CONFIG      Config file path
//
// # Exit Codes
//
// The check command follows the plugin protocol (0/1/2/3, see pkg/plugin).
// Other commands exit 0 on success and 1 on error.
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/temp-probe/pkg/cli.version=1.0.0'"
package cli
