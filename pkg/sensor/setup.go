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
	"fmt"
	"log/slog"
	"os"
)

// GenerateConfig walks the 1-wire bus once and writes the digitemp sensor
// roster to configFile. An existing roster is kept unless force is set;
// sensors keep their channel order across runs only if the roster is stable,
// so regeneration is deliberate, not automatic.
func GenerateConfig(ctx context.Context, run Runner, binary, configFile string, force bool) error {
	if run == nil {
		run = defaultRunner
	}
	if configFile == "" {
		configFile = DefaultConfigFile
	}

	if !force {
		if _, err := os.Stat(configFile); err == nil {
			slog.Info("sensor config already present, skipping bus walk", "config", configFile)
			return nil
		}
	}

	// -i walks the bus and records every sensor's ROM address
	if _, err := run(ctx, binary, "-i", "-q", "-c", configFile); err != nil {
		return fmt.Errorf("failed to initialize sensor config %s: %w", configFile, err)
	}

	slog.Info("sensor config generated", "config", configFile)
	return nil
}
