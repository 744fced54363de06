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
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_JSONOutput(t *testing.T) {
	withFakeSensor(t, "21.81 24,00", nil)

	out := filepath.Join(t.TempDir(), "readings.json")
	_, err := runCommand(t, "read", "--format", "json", "--output", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var report readingReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "21.81 24,00", report.Raw)
	require.Len(t, report.Readings, 2)
	assert.Equal(t, 0, report.Readings[0].Channel)
	assert.Equal(t, "21.81", report.Readings[0].Raw)
	assert.Equal(t, 2181, report.Readings[0].Centi)
	assert.Equal(t, 1, report.Readings[1].Channel)
	assert.Equal(t, 2400, report.Readings[1].Centi)
}

func TestRead_TableOutput(t *testing.T) {
	withFakeSensor(t, "21.81", nil)

	out, err := runCommand(t, "read", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "CHANNEL")
	assert.Contains(t, out, "21.81")
}

func TestRead_SensorFailurePropagates(t *testing.T) {
	withFakeSensor(t, "", os.ErrPermission)

	_, err := runCommand(t, "read")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read sensors")
}

func TestReadingReport_TableShape(t *testing.T) {
	withFakeSensor(t, "9.75 -3.50", nil)

	out, err := runCommand(t, "read", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "9.75")
	assert.Contains(t, out, "-3.50")
}
