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

package reading

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/NVIDIA/temp-probe/pkg/errors"
)

// Separators accepted as the fractional delimiter in sensor output and
// threshold values.
const Separators = ".,:"

// rawShape validates the entire raw sensor string: one or more groups of
// optional sign, digits, optional fractional separator, digits, separated by
// single spaces with an optional trailing space.
var rawShape = regexp.MustCompile(`^(-?[0-9]+[.,:]?[0-9]+ ?)+$`)

// Reading is a single decimal temperature value extracted from sensor
// output, tagged with its 0-based channel position in the multi-sensor line.
type Reading struct {
	// Channel is the 0-based position of the value in the sensor output.
	Channel int `json:"channel" yaml:"channel"`

	// Raw is the token exactly as emitted by the sensor utility. Report
	// strings echo this form, not the normalized one.
	Raw string `json:"raw" yaml:"raw"`

	// Centi is the normalized value in hundredths of a degree Celsius.
	Centi int `json:"centi" yaml:"centi"`
}

// Celsius returns the reading as a floating-point degree value. Used only
// for display; classification compares Centi values.
func (r Reading) Celsius() float64 {
	return float64(r.Centi) / 100
}

// Parse converts a raw whitespace-separated sensor output string into an
// ordered sequence of readings, channel indexes assigned in input order
// starting at 0.
//
// The whole string must match the expected reading shape; otherwise Parse
// fails with ErrCodeMalformedReading and no readings are produced. An empty
// string fails with ErrCodeNoReadings. The caller must treat either failure
// as UNKNOWN and skip classification.
func Parse(raw string) ([]Reading, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New(errors.ErrCodeNoReadings, "sensor produced no output")
	}

	if !rawShape.MatchString(raw) {
		return nil, errors.NewWithContext(
			errors.ErrCodeMalformedReading,
			"sensor output does not match the expected reading shape",
			map[string]any{"raw": raw},
		)
	}

	tokens := strings.Fields(raw)
	readings := make([]Reading, 0, len(tokens))

	for i, tok := range tokens {
		centi, err := Normalize(tok)
		if err != nil {
			return nil, errors.WrapWithContext(
				errors.ErrCodeMalformedReading,
				"failed to normalize reading",
				err,
				map[string]any{"token": tok, "channel": i},
			)
		}
		readings = append(readings, Reading{
			Channel: i,
			Raw:     tok,
			Centi:   centi,
		})
	}

	return readings, nil
}

// Normalize converts one decimal token to hundredths of a degree by removing
// the fractional separator and interpreting the remaining digits as a signed
// integer. "21.81" and "21,81" both normalize to 2181, "9.75" to 975, and a
// separator-less "2181" passes through unchanged.
func Normalize(tok string) (int, error) {
	stripped := tok
	if i := strings.IndexAny(tok, Separators); i >= 0 {
		stripped = tok[:i] + tok[i+1:]
	}

	v, err := strconv.Atoi(stripped)
	if err != nil {
		return 0, err
	}
	return v, nil
}
