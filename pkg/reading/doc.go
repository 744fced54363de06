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

// Package reading parses and normalizes raw temperature sensor output.
//
// The sensor utility emits one or more whitespace-separated decimal tokens,
// one per 1-wire channel. Depending on the utility build and locale, the
// fractional separator may be a period, a comma, or a colon, and values below
// ten degrees may omit the leading zero digit ("9.75" vs "09.75"). Parse
// validates the whole string against the expected shape, then normalizes
// every token to an integer count of hundredths of a degree so values with
// heterogeneous formats compare consistently against thresholds.
//
// Normalization preserves the ordering behavior of the original fixed-width
// string scheme for every input matching the shape: stripping the separator
// from a D?D.DD value and zero-padding to four digits is exactly its value in
// hundredths.
package reading
