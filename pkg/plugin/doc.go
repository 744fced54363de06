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

// Package plugin implements the monitoring-plugin output contract shared by
// the probe commands.
//
// A monitoring supervisor (Nagios, Icinga, and compatible schedulers) runs
// the probe once per check interval and interprets two things: the process
// exit code and a single line on stdout.
//
// # Statuses and Exit Codes
//
//	OK        0  all readings below the warning threshold
//	WARNING   1  at least one reading at or above the warning threshold
//	CRITICAL  2  at least one reading at or above the critical threshold
//	UNKNOWN   3  malformed thresholds, malformed sensor output, or tooling failure
//
// # Output Line
//
// Classified results render as:
//
//	TEMP OK - 0:21.81 C
//	TEMP CRITICAL - 0:24.00;1:31.00 C
//	TEMP WARNING - 0:26.00 C 'temp'=0;26.00;25.00;30.00
//
// UNKNOWN results carry the failure reason instead of the per-channel report:
//
//	TEMP UNKNOWN - invalid warning threshold "7"
//
// Everything else the probe prints (logs, diagnostics) goes to stderr so the
// supervisor only ever sees the status line on stdout.
package plugin
