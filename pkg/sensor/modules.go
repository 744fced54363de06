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
	"strings"

	"github.com/NVIDIA/temp-probe/pkg/defaults"
)

var (
	modulesFilePath = "/proc/modules"

	// RequiredModules are the kernel modules backing GPIO-attached 1-wire
	// buses. Serial and USB adapters work without them, so a missing
	// module is a setup concern, never a check failure.
	RequiredModules = []string{"w1-gpio", "w1_therm"}
)

// LoadedModules retrieves the set of loaded kernel modules from
// /proc/modules, keyed by normalized module name.
func LoadedModules() (map[string]bool, error) {
	data, err := os.ReadFile(modulesFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read kernel modules from %s: %w", modulesFilePath, err)
	}

	loaded := make(map[string]bool)
	for _, line := range strings.Split(string(data), "\n") {
		// module name is the first field (space-separated)
		fields := strings.Fields(line)
		if len(fields) > 0 {
			loaded[normalizeModuleName(fields[0])] = true
		}
	}
	return loaded, nil
}

// MissingModules returns the required modules not currently loaded, in
// RequiredModules order.
func MissingModules() ([]string, error) {
	loaded, err := LoadedModules()
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, m := range RequiredModules {
		if !loaded[normalizeModuleName(m)] {
			missing = append(missing, m)
		}
	}
	return missing, nil
}

// EnsureModules loads any missing required kernel modules via modprobe and
// returns the names it loaded. Requires root or modprobe sudo rights.
func EnsureModules(ctx context.Context, run Runner) ([]string, error) {
	if run == nil {
		run = defaultRunner
	}

	missing, err := MissingModules()
	if err != nil {
		return nil, err
	}

	for _, m := range missing {
		mctx, cancel := context.WithTimeout(ctx, defaults.ModprobeTimeout)
		_, err := run(mctx, "modprobe", m)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("failed to load kernel module %s: %w", m, err)
		}
		slog.Info("loaded kernel module", "module", m)
	}

	return missing, nil
}

// normalizeModuleName folds dashes to underscores; the kernel reports
// w1-gpio as w1_gpio in /proc/modules.
func normalizeModuleName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}
