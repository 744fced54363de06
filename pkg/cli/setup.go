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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/temp-probe/pkg/defaults"
	"github.com/NVIDIA/temp-probe/pkg/sensor"
)

func setupCmd() *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Prepare the host for 1-wire temperature reads",
		Description: `One-time host preparation, typically run once as root after wiring the
sensors:

  1. Loads the w1-gpio and w1_therm kernel modules when missing.
  2. Locates the digitemp utility on PATH.
  3. Walks the 1-wire bus and writes the sensor roster config.

An existing roster is kept unless --force is given; channel numbers in
check output are only stable while the roster stays unchanged.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "sensor-config",
				Value:   sensor.DefaultConfigFile,
				Usage:   "digitemp sensor roster file to generate",
				Sources: cli.EnvVars("TEMPPROBE_SENSOR_CONFIG"),
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "regenerate the roster even when it already exists",
			},
			&cli.BoolFlag{
				Name:  "skip-modules",
				Usage: "do not probe or load kernel modules",
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

			sctx, cancel := context.WithTimeout(ctx, defaults.SensorInitTimeout)
			defer cancel()

			if !cmd.Bool("skip-modules") {
				loaded, err := sensor.EnsureModules(sctx, nil)
				if err != nil {
					return fmt.Errorf("failed to load kernel modules: %w", err)
				}
				if len(loaded) > 0 {
					slog.Info("kernel modules loaded", "modules", loaded)
				}
			}

			bin, err := sensor.Locate()
			if err != nil {
				return err
			}

			if err := sensor.GenerateConfig(sctx, nil, bin, cmd.String("sensor-config"), cmd.Bool("force")); err != nil {
				return err
			}

			fmt.Fprintf(output(cmd), "setup complete: %s\n", cmd.String("sensor-config"))
			return nil
		},
	}
}
