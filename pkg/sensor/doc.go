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

// Package sensor talks to the host's 1-wire temperature hardware through the
// digitemp utility family. It locates the utility, invokes it with a bounded
// context (optionally through sudo -n), and hands the raw whitespace-joined
// output to the reading parser. It also covers the one-time host setup: the
// w1 kernel modules and the digitemp sensor configuration file produced by a
// bus walk.
//
// The package never interprets temperature values; classification semantics
// live entirely in pkg/reading and pkg/classify.
package sensor
