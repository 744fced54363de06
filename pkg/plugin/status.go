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

package plugin

// Status is the plugin-protocol check status. The zero value is StatusOK.
type Status int

const (
	// StatusOK indicates all readings are below the warning threshold.
	StatusOK Status = iota
	// StatusWarning indicates at least one reading at or above the warning threshold.
	StatusWarning
	// StatusCritical indicates at least one reading at or above the critical threshold.
	StatusCritical
	// StatusUnknown indicates the check could not be performed.
	StatusUnknown
)

// String returns the plugin-protocol label for the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode returns the process exit code mandated by the plugin protocol:
// 0 OK, 1 WARNING, 2 CRITICAL, 3 UNKNOWN. Out-of-range values map to UNKNOWN.
func (s Status) ExitCode() int {
	if s < StatusOK || s > StatusUnknown {
		return StatusUnknown.ExitCode()
	}
	return int(s)
}

// Escalate returns the more severe of the two statuses. Severity order is
// CRITICAL > WARNING > OK; classification never lowers a status once raised.
// UNKNOWN is not a classification outcome and is excluded from escalation:
// it only ever enters a result through a failed precondition.
func Escalate(a, b Status) Status {
	if a == StatusUnknown || b == StatusUnknown {
		return StatusUnknown
	}
	if b > a {
		return b
	}
	return a
}
