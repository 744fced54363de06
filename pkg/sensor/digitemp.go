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

package sensor

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/NVIDIA/temp-probe/pkg/errors"
)

// DefaultConfigFile is where the one-time bus walk stores the sensor roster.
const DefaultConfigFile = "/etc/digitemp.conf"

// digitempBinaries are the utility names probed on PATH, in preference
// order. The suffixed builds are adapter-specific (serial DS9097, USB
// DS2490); plain digitemp is a distro-provided symlink on some systems.
var digitempBinaries = []string{
	"digitemp",
	"digitemp_DS9097",
	"digitemp_DS9097U",
	"digitemp_DS2490",
}

// Runner executes one external command and returns its stdout. Injectable
// for tests; the zero value of consumers uses defaultRunner.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func defaultRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Reader provides one raw sensor output string per check run.
type Reader interface {
	Read(ctx context.Context) (string, error)
}

// Locate finds the digitemp utility on PATH. Fails with
// ErrCodeSensorUnavailable when no known variant is installed.
func Locate() (string, error) {
	for _, name := range digitempBinaries {
		if path, err := exec.LookPath(name); err == nil && path != "" {
			return path, nil
		}
	}
	return "", errors.NewWithContext(errors.ErrCodeSensorUnavailable,
		"no digitemp utility found on PATH",
		map[string]any{"candidates": strings.Join(digitempBinaries, ", ")})
}

// DigitempReader reads all configured 1-wire channels in one utility
// invocation.
type DigitempReader struct {
	// Command, when set, is the exact command line to run (binary plus
	// arguments). When empty the utility is located on PATH and invoked
	// with the standard read arguments.
	Command []string

	// ConfigFile is the digitemp sensor roster. Defaults to
	// DefaultConfigFile.
	ConfigFile string

	// Sudo attempts a non-interactive sudo invocation first, falling back
	// to a direct one. Serial adapters are often root-owned device nodes.
	Sudo bool

	// Run is the command executor, injectable for tests.
	Run Runner
}

// Read invokes the sensor utility once and returns its output with
// whitespace runs collapsed to single spaces, matching the
// one-token-per-channel shape the parser validates. Failures classify as
// TIMEOUT, SENSOR_UNAVAILABLE, or SENSOR_FAILURE; all surface as UNKNOWN at
// the process boundary.
func (r *DigitempReader) Read(ctx context.Context) (string, error) {
	argv, err := r.argv()
	if err != nil {
		return "", err
	}

	run := r.Run
	if run == nil {
		run = defaultRunner
	}

	out, err := r.invoke(ctx, run, argv)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", errors.Wrap(errors.ErrCodeTimeout, "sensor read timed out", ctx.Err())
		}
		return "", errors.WrapWithContext(errors.ErrCodeSensorFailure,
			"sensor utility failed", err,
			map[string]any{"command": strings.Join(argv, " ")})
	}

	raw := strings.Join(strings.Fields(string(out)), " ")
	slog.Debug("sensor read complete", "command", argv[0], "raw", raw)
	return raw, nil
}

func (r *DigitempReader) invoke(ctx context.Context, run Runner, argv []string) ([]byte, error) {
	if r.Sudo {
		out, err := run(ctx, "sudo", append([]string{"-n"}, argv...)...)
		if err == nil {
			return out, nil
		}
		slog.Debug("sudo invocation failed, retrying directly", "error", err)
	}
	return run(ctx, argv[0], argv[1:]...)
}

func (r *DigitempReader) argv() ([]string, error) {
	if len(r.Command) > 0 {
		return r.Command, nil
	}

	bin, err := Locate()
	if err != nil {
		return nil, err
	}

	rc := r.ConfigFile
	if rc == "" {
		rc = DefaultConfigFile
	}

	// -a all sensors, -q suppress the banner, -o emit Celsius only
	return []string{bin, "-a", "-q", "-c", rc, "-o", "%C"}, nil
}
