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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/temp-probe/pkg/logging"
	"github.com/NVIDIA/temp-probe/pkg/plugin"
)

const name = "tempprobe"

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// statusError carries a non-OK check outcome through the command return path
// so Run can map it to the plugin exit code without printing anything.
type statusError struct {
	status plugin.Status
}

func (e *statusError) Error() string {
	return fmt.Sprintf("check completed with status %s", e.status)
}

// New creates the root command with all subcommands and global flags.
func New() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "1-wire temperature monitoring probe",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "logging verbosity (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "debug-log",
				Usage:   "path of a JSON debug transcript file",
				Sources: cli.EnvVars("TEMPPROBE_DEBUG_LOG"),
			},
			&cli.BoolFlag{
				Name:    "journal",
				Usage:   "mirror diagnostics to the systemd journal",
				Sources: cli.EnvVars("TEMPPROBE_JOURNAL"),
			},
		},
		Commands: []*cli.Command{
			checkCmd(),
			readCmd(),
			setupCmd(),
		},
	}
}

// Run executes the CLI and returns the process exit code. Check outcomes map
// to the plugin protocol (0/1/2/3); any other error exits 1.
func Run(ctx context.Context, args []string) int {
	err := New().Run(ctx, args)
	if err == nil {
		return 0
	}

	var se *statusError
	if errors.As(err, &se) {
		return se.status.ExitCode()
	}

	fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
	return 1
}

// initRun installs the logging sinks for one command invocation and tags every
// record with a fresh run id. The returned closer flushes the debug transcript.
func initRun(cmd *cli.Command) (func() error, error) {
	closer, err := logging.SetDefaultLoggerWithSinks(name, version, cmd.String("log-level"), logging.Sinks{
		DebugFile: cmd.String("debug-log"),
		Journal:   cmd.Bool("journal"),
	})
	if err != nil {
		return nil, err
	}

	slog.SetDefault(slog.Default().With("run", uuid.NewString()))
	slog.Debug("starting",
		"command", cmd.Name,
		"commit", commit,
		"date", date)

	return closer, nil
}

// output returns the command's output writer, defaulting to os.Stdout. Tests
// swap the root Writer to capture the plugin line.
func output(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
