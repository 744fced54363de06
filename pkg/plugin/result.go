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

import (
	"fmt"
	"strings"
)

// Result is the sole output of a check run: the overall status, the
// per-channel report, and optional performance-data metrics. It is immutable
// once produced; rendering and exit-code mapping derive from it.
type Result struct {
	// Status is the overall check status (most severe across all readings).
	Status Status `json:"status" yaml:"status"`

	// Report is the semicolon-joined per-channel report ("0:21.81;1:24.00")
	// for classified results, or the failure reason for UNKNOWN results.
	Report string `json:"report" yaml:"report"`

	// Perfdata holds one metric per reading, in channel order, when
	// performance data is enabled.
	Perfdata []string `json:"perfdata,omitempty" yaml:"perfdata,omitempty"`
}

// Unknown builds an UNKNOWN result carrying the failure reason. The reason is
// echoed on the output line so the supervisor side can diagnose the check
// without access to the probe logs.
func Unknown(format string, args ...any) Result {
	return Result{
		Status: StatusUnknown,
		Report: fmt.Sprintf(format, args...),
	}
}

// ExitCode returns the process exit code for the result.
func (r Result) ExitCode() int {
	return r.Status.ExitCode()
}

// Line renders the single stdout line consumed by the monitoring supervisor.
//
//	TEMP <STATUS> - <report> C [<perfdata> ...]
//	TEMP UNKNOWN - <reason>
func (r Result) Line() string {
	if r.Status == StatusUnknown {
		return fmt.Sprintf("TEMP UNKNOWN - %s", r.Report)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "TEMP %s - %s C", r.Status, r.Report)
	if len(r.Perfdata) > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Join(r.Perfdata, " "))
	}
	return b.String()
}
