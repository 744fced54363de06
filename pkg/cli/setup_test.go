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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/temp-probe/pkg/errors"
)

// stubDigitemp places a no-op digitemp executable on a private PATH.
func stubDigitemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	bin := filepath.Join(dir, "digitemp")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\nexit 0\n"), 0o755))
	t.Setenv("PATH", dir)
}

func TestSetup_GeneratesRoster(t *testing.T) {
	if testing.Short() {
		t.Skip("executes a stub binary")
	}
	stubDigitemp(t)

	rc := filepath.Join(t.TempDir(), "digitemp.conf")
	out, err := runCommand(t, "setup", "--skip-modules", "--sensor-config", rc)
	require.NoError(t, err)
	assert.Contains(t, out, "setup complete")
}

func TestSetup_KeepsExistingRoster(t *testing.T) {
	stubDigitemp(t)

	rc := filepath.Join(t.TempDir(), "digitemp.conf")
	require.NoError(t, os.WriteFile(rc, []byte("ROM 0 0x28\n"), 0o600))

	_, err := runCommand(t, "setup", "--skip-modules", "--sensor-config", rc)
	require.NoError(t, err)

	data, err := os.ReadFile(rc)
	require.NoError(t, err)
	assert.Equal(t, "ROM 0 0x28\n", string(data))
}

func TestSetup_NoUtility(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	rc := filepath.Join(t.TempDir(), "digitemp.conf")
	_, err := runCommand(t, "setup", "--skip-modules", "--sensor-config", rc)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeSensorUnavailable, errors.CodeOf(err))
}
