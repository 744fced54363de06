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

package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/temp-probe/pkg/classify"
	"github.com/NVIDIA/temp-probe/pkg/config"
	"github.com/NVIDIA/temp-probe/pkg/defaults"
	"github.com/NVIDIA/temp-probe/pkg/errors"
	"github.com/NVIDIA/temp-probe/pkg/plugin"
	"github.com/NVIDIA/temp-probe/pkg/reading"
	"github.com/NVIDIA/temp-probe/pkg/sensor"
)

// newSensorReader builds the sensor reader for one run. Package variable so
// command tests can substitute a scripted reader.
var newSensorReader = func(command []string, configFile string, sudo bool) sensor.Reader {
	return &sensor.DigitempReader{
		Command:    command,
		ConfigFile: configFile,
		Sudo:       sudo,
	}
}

// checkOptions are the resolved inputs of one check run. Flag values win over
// config file values, which win over defaults.
type checkOptions struct {
	warning       string
	critical      string
	perfdata      bool
	sensorCommand []string
	sensorConfig  string
	sudo          bool
	timeout       time.Duration

	// configErr defers a config file failure to runCheck so it renders as
	// UNKNOWN instead of a bare command error.
	configErr error
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Read 1-wire temperatures and report the plugin status",
		Description: `Runs one probe cycle: reads every configured sensor channel through the
digitemp utility, classifies each value against the warning and critical
thresholds, and prints one status line:

   TEMP OK - 0:21.81 C
   TEMP CRITICAL - 0:24.00;1:31.00 C
   TEMP UNKNOWN - invalid warning threshold "7"

The exit code follows the plugin protocol: 0 OK, 1 WARNING, 2 CRITICAL,
3 UNKNOWN. Any internal failure (bad threshold, unreadable sensor,
malformed output) is reported as UNKNOWN on stdout, never as a bare error.

Thresholds take the form D?D<sep>DD where <sep> is '.', ',' or ':'
(for example 25.00 or 25:00). A reading equal to or above the critical
threshold is CRITICAL; otherwise equal to or above the warning threshold
is WARNING; otherwise OK. The most severe channel wins.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "warning",
				Aliases: []string{"w"},
				Usage:   "warning threshold (D?D.DD)",
				Sources: cli.EnvVars("TEMPPROBE_WARNING"),
			},
			&cli.StringFlag{
				Name:    "critical",
				Aliases: []string{"c"},
				Usage:   "critical threshold (D?D.DD)",
				Sources: cli.EnvVars("TEMPPROBE_CRITICAL"),
			},
			&cli.BoolFlag{
				Name:    "perfdata",
				Aliases: []string{"p"},
				Usage:   "append performance data to the status line",
				Sources: cli.EnvVars("TEMPPROBE_PERFDATA"),
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML config file with thresholds and sensor command",
				Sources: cli.EnvVars("TEMPPROBE_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "sensor-command",
				Usage:   "explicit sensor command line, overriding PATH discovery",
				Sources: cli.EnvVars("TEMPPROBE_SENSOR_COMMAND"),
			},
			&cli.StringFlag{
				Name:    "sensor-config",
				Value:   sensor.DefaultConfigFile,
				Usage:   "digitemp sensor roster file",
				Sources: cli.EnvVars("TEMPPROBE_SENSOR_CONFIG"),
			},
			&cli.BoolFlag{
				Name:    "sudo",
				Usage:   "try a non-interactive sudo invocation first",
				Sources: cli.EnvVars("TEMPPROBE_SUDO"),
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Value:   defaults.SensorReadTimeout,
				Usage:   "sensor read timeout",
				Sources: cli.EnvVars("TEMPPROBE_TIMEOUT"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			closer, err := initRun(cmd)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := closer(); cerr != nil {
					slog.Error("failed to close log sinks", "error", cerr)
				}
			}()

			res := runCheck(ctx, resolveCheckOptions(cmd))

			fmt.Fprintln(output(cmd), res.Line())
			if res.Status == plugin.StatusOK {
				return nil
			}
			return &statusError{status: res.Status}
		},
	}
}

// resolveCheckOptions merges flags, the optional config file, and defaults.
// A named config file that cannot be read or parsed is carried as configErr
// so runCheck renders it as UNKNOWN; resolution itself never aborts.
func resolveCheckOptions(cmd *cli.Command) checkOptions {
	opts := checkOptions{
		warning:      classify.DefaultWarning,
		critical:     classify.DefaultCritical,
		perfdata:     cmd.Bool("perfdata"),
		sensorConfig: cmd.String("sensor-config"),
		sudo:         cmd.Bool("sudo"),
		timeout:      cmd.Duration("timeout"),
	}

	if path := cmd.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			// surfaced as UNKNOWN by runCheck
			opts.configErr = err
			return opts
		}
		if cfg.Warning != "" {
			opts.warning = cfg.Warning
		}
		if cfg.Critical != "" {
			opts.critical = cfg.Critical
		}
		if cfg.SensorCommand != "" {
			opts.sensorCommand = strings.Fields(cfg.SensorCommand)
		}
	}

	if cmd.IsSet("warning") {
		opts.warning = cmd.String("warning")
	}
	if cmd.IsSet("critical") {
		opts.critical = cmd.String("critical")
	}
	if s := cmd.String("sensor-command"); s != "" {
		opts.sensorCommand = strings.Fields(s)
	}

	return opts
}

// runCheck executes one probe cycle and always returns a renderable result;
// every failure mode folds into an UNKNOWN result.
func runCheck(ctx context.Context, opts checkOptions) plugin.Result {
	if opts.configErr != nil {
		return unknownResult(opts.configErr)
	}

	classifier, err := classify.NewClassifier(opts.warning, opts.critical, opts.perfdata)
	if err != nil {
		return unknownResult(err)
	}

	timeout := opts.timeout
	if timeout <= 0 {
		timeout = defaults.SensorReadTimeout
	}
	rctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	reader := newSensorReader(opts.sensorCommand, opts.sensorConfig, opts.sudo)
	raw, err := reader.Read(rctx)
	if err != nil {
		return unknownResult(err)
	}

	readings, err := reading.Parse(raw)
	if err != nil {
		return unknownResult(err)
	}

	res, err := classifier.Run(readings)
	if err != nil {
		return unknownResult(err)
	}

	slog.Info("check complete",
		"status", res.Status.String(),
		"report", res.Report)
	return res
}

// unknownResult logs the failure in full and folds it into an UNKNOWN result
// whose reason is short enough for the status line. Structured errors surface
// their message plus any echoed raw value; plain errors pass through.
func unknownResult(err error) plugin.Result {
	slog.Error("check failed", "code", string(errors.CodeOf(err)), "error", err)

	var se *errors.StructuredError
	if stderrors.As(err, &se) {
		msg := se.Message
		if raw, ok := se.Context["raw"]; ok {
			msg = fmt.Sprintf("%s: %q", msg, raw)
		}
		return plugin.Unknown("%s", msg)
	}
	return plugin.Unknown("%v", err)
}
