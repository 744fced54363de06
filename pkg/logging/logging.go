// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

const logLevelEnvVar = "LOG_LEVEL"

// ParseLevel converts a textual log level to a slog.Level. Unrecognized or
// empty values default to INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewStructuredLogger creates a JSON logger writing to stderr with module and
// version context attached to every record. Debug level enables source
// location tracking.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	return slog.New(newStderrHandler(module, version, ParseLevel(level)))
}

// SetDefaultStructuredLogger installs the structured logger as the slog
// default, taking the level from the LOG_LEVEL environment variable.
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, os.Getenv(logLevelEnvVar))
}

// SetDefaultStructuredLoggerWithLevel installs the structured logger as the
// slog default with an explicit level, overriding LOG_LEVEL.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	slog.SetDefault(NewStructuredLogger(module, version, level))
}

// Sinks configures additional log destinations beyond stderr.
type Sinks struct {
	// DebugFile, when non-empty, receives the full run transcript at DEBUG
	// level regardless of the stderr level.
	DebugFile string

	// Journal mirrors records to the systemd journal when it is available.
	// Silently skipped on hosts without journald.
	Journal bool
}

// SetDefaultLoggerWithSinks installs the default logger fanned out to stderr
// plus the configured sinks. The returned function releases the debug file
// handle and must be called before the process exits.
func SetDefaultLoggerWithSinks(module, version, level string, sinks Sinks) (func() error, error) {
	handlers := []slog.Handler{newStderrHandler(module, version, ParseLevel(level))}
	closer := func() error { return nil }

	if sinks.DebugFile != "" {
		f, err := os.OpenFile(sinks.DebugFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("failed to open debug log %s: %w", sinks.DebugFile, err)
		}
		h := slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		})
		handlers = append(handlers, h.WithAttrs(moduleAttrs(module, version)))
		closer = f.Close
	}

	if sinks.Journal {
		if jh := newJournalHandler(ParseLevel(level)); jh != nil {
			handlers = append(handlers, jh)
		}
	}

	if len(handlers) == 1 {
		slog.SetDefault(slog.New(handlers[0]))
		return closer, nil
	}

	slog.SetDefault(slog.New(newTeeHandler(handlers...)))
	return closer, nil
}

func newStderrHandler(module, version string, level slog.Level) slog.Handler {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	})
	return h.WithAttrs(moduleAttrs(module, version))
}

func moduleAttrs(module, version string) []slog.Attr {
	return []slog.Attr{
		slog.String("module", module),
		slog.String("version", version),
	}
}
