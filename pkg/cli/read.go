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
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/temp-probe/pkg/defaults"
	"github.com/NVIDIA/temp-probe/pkg/reading"
	"github.com/NVIDIA/temp-probe/pkg/sensor"
	"github.com/NVIDIA/temp-probe/pkg/serializer"
)

// readingReport is the diagnostic view of one sensor read.
type readingReport struct {
	Raw      string            `json:"raw" yaml:"raw"`
	Readings []reading.Reading `json:"readings" yaml:"readings"`
}

func (r *readingReport) TableHeader() []string {
	return []string{"CHANNEL", "RAW", "CELSIUS"}
}

func (r *readingReport) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Readings))
	for _, rd := range r.Readings {
		rows = append(rows, []string{
			strconv.Itoa(rd.Channel),
			rd.Raw,
			strconv.FormatFloat(rd.Celsius(), 'f', 2, 64),
		})
	}
	return rows
}

func readCmd() *cli.Command {
	return &cli.Command{
		Name:  "read",
		Usage: "Read the sensors once and dump the parsed values",
		Description: `Performs one sensor read without any threshold classification and writes
the parsed channel values in the requested format. Intended for cabling
and roster diagnostics, not for supervisor consumption.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   string(serializer.FormatTable),
				Usage:   fmt.Sprintf("output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
				Sources: cli.EnvVars("TEMPPROBE_FORMAT"),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file path (default: stdout)",
				Sources: cli.EnvVars("TEMPPROBE_OUTPUT"),
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

			timeout := cmd.Duration("timeout")
			if timeout <= 0 {
				timeout = defaults.SensorReadTimeout
			}
			rctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			var command []string
			if s := cmd.String("sensor-command"); s != "" {
				command = strings.Fields(s)
			}
			reader := newSensorReader(command, cmd.String("sensor-config"), cmd.Bool("sudo"))

			raw, err := reader.Read(rctx)
			if err != nil {
				return fmt.Errorf("failed to read sensors: %w", err)
			}

			readings, err := reading.Parse(raw)
			if err != nil {
				return fmt.Errorf("failed to parse sensor output: %w", err)
			}

			format := serializer.Format(cmd.String("format"))
			var w *serializer.Writer
			if path := cmd.String("output"); path != "" {
				w = serializer.NewFileWriterOrStdout(format, path)
			} else {
				w = serializer.NewWriter(format, output(cmd))
			}
			defer func() {
				if cerr := w.Close(); cerr != nil {
					slog.Error("failed to close output writer", "error", cerr)
				}
			}()

			return w.Serialize(ctx, &readingReport{Raw: raw, Readings: readings})
		},
	}
}
