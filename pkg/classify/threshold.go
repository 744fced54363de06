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

package classify

import (
	"regexp"

	"github.com/NVIDIA/temp-probe/pkg/errors"
	"github.com/NVIDIA/temp-probe/pkg/reading"
)

// Default thresholds applied when the operator supplies none.
const (
	DefaultWarning  = "25.00"
	DefaultCritical = "30.00"
)

// thresholdShape validates operator-supplied thresholds: one or two integer
// digits, a fractional separator, exactly two fractional digits.
var thresholdShape = regexp.MustCompile(`^[0-9]{1,2}[.,:][0-9]{2}$`)

// Threshold is an operator-configured decimal boundary value, normalized
// once per run to the same hundredths representation used for readings.
type Threshold struct {
	// Raw is the threshold exactly as supplied; perfdata echoes this form.
	Raw string `json:"raw" yaml:"raw"`

	// Centi is the normalized value in hundredths of a degree.
	Centi int `json:"centi" yaml:"centi"`
}

// ParseThreshold validates the shape of an operator-supplied threshold and
// normalizes it. A value failing the two-fractional-digit shape fails with
// ErrCodeInvalidThreshold; the caller must report UNKNOWN before any sensor
// interaction.
func ParseThreshold(s string) (Threshold, error) {
	if !thresholdShape.MatchString(s) {
		return Threshold{}, errors.Newf(errors.ErrCodeInvalidThreshold,
			"invalid threshold %q: want one or two digits, a separator, and two fractional digits", s)
	}

	centi, err := reading.Normalize(s)
	if err != nil {
		return Threshold{}, errors.Wrap(errors.ErrCodeInvalidThreshold, "failed to normalize threshold", err)
	}

	return Threshold{Raw: s, Centi: centi}, nil
}
