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

// Package classify compares normalized temperature readings against the
// warning and critical thresholds and aggregates the per-channel outcomes
// into one plugin result.
//
// Per-reading precedence is unambiguous: a value at or above the critical
// threshold is CRITICAL, else at or above the warning threshold is WARNING,
// else OK. Across readings the most severe classification wins; later
// channels can raise the overall status but never lower it.
//
// Thresholds are validated for shape only (one or two integer digits, a
// fractional separator, exactly two fractional digits). The relationship
// critical >= warning is a caller responsibility and deliberately not
// enforced here.
package classify
