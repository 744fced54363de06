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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// maxConfigSize caps the config file read; threshold files are tiny.
const maxConfigSize = 64 << 10

// Config carries the operator-supplied check parameters. The file is a
// pass-through for values that could equally arrive as flags; flags win when
// both are present.
//
//	warning: "22.10"
//	critical: "25.00"
//	sensorCommand: "digitemp_DS9097 -a -q -o %C"
type Config struct {
	// Warning is the warning threshold, D?D[.,:]DD shape.
	Warning string `yaml:"warning,omitempty"`

	// Critical is the critical threshold, D?D[.,:]DD shape.
	Critical string `yaml:"critical,omitempty"`

	// SensorCommand overrides sensor utility discovery with an explicit
	// command line.
	SensorCommand string `yaml:"sensorCommand,omitempty"`
}

// Load reads and strictly decodes a YAML config file. Unknown keys are
// rejected so typos surface as UNKNOWN instead of silently falling back to
// defaults. Values are not shape-validated here; threshold validation is the
// classifier's precondition.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxConfigSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// empty file behaves like an absent one
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return &cfg, nil
}
