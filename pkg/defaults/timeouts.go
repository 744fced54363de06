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

package defaults

import "time"

// Sensor timeouts for 1-wire bus operations. A DS18B20 conversion takes up
// to 750ms per device plus serial adapter latency, so reads are slow but
// bounded.
const (
	// SensorReadTimeout is the default time limit for one digitemp read
	// across all configured channels. Overridable with --timeout.
	SensorReadTimeout = 10 * time.Second

	// SensorInitTimeout is the time limit for the one-time bus walk that
	// generates the digitemp sensor configuration file.
	SensorInitTimeout = 30 * time.Second
)

// Host setup timeouts.
const (
	// ModprobeTimeout is the time limit for loading one kernel module.
	ModprobeTimeout = 5 * time.Second
)
