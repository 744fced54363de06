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
	"fmt"
	"log/slog"
	"strings"

	"github.com/NVIDIA/temp-probe/pkg/errors"
	"github.com/NVIDIA/temp-probe/pkg/plugin"
	"github.com/NVIDIA/temp-probe/pkg/reading"
)

// Classifier holds the per-run classification inputs: the two normalized
// thresholds and the perfdata toggle. Thresholds are normalized once at
// construction, not per reading.
type Classifier struct {
	Warning  Threshold
	Critical Threshold

	// Perfdata controls whether performance-data metrics are appended to
	// the result, one per reading.
	Perfdata bool
}

// NewClassifier parses and validates both thresholds. Either value failing
// shape validation fails the whole run with ErrCodeInvalidThreshold before
// any reading is processed.
func NewClassifier(warning, critical string, perfdata bool) (*Classifier, error) {
	w, err := ParseThreshold(warning)
	if err != nil {
		return nil, errors.Newf(errors.ErrCodeInvalidThreshold, "invalid warning threshold %q", warning)
	}

	c, err := ParseThreshold(critical)
	if err != nil {
		return nil, errors.Newf(errors.ErrCodeInvalidThreshold, "invalid critical threshold %q", critical)
	}

	if c.Centi < w.Centi {
		// Precondition by convention only; never enforced.
		slog.Warn("critical threshold below warning threshold",
			"warning", w.Raw,
			"critical", c.Raw)
	}

	return &Classifier{Warning: w, Critical: c, Perfdata: perfdata}, nil
}

// Run classifies every reading and folds the per-channel outcomes into one
// immutable result. The overall status is the most severe classification
// observed; the report echoes each raw value as "<channel>:<raw>" joined by
// semicolons, in channel order.
func (c *Classifier) Run(readings []reading.Reading) (plugin.Result, error) {
	if len(readings) == 0 {
		return plugin.Result{}, errors.New(errors.ErrCodeNoReadings, "no readings to classify")
	}

	overall := plugin.StatusOK
	report := make([]string, 0, len(readings))
	var perfdata []string

	for _, r := range readings {
		status := c.classify(r)
		overall = plugin.Escalate(overall, status)

		slog.Debug("classified reading",
			"channel", r.Channel,
			"value", r.Raw,
			"status", status.String())

		report = append(report, fmt.Sprintf("%d:%s", r.Channel, r.Raw))
		if c.Perfdata {
			perfdata = append(perfdata, c.perfdatum(r))
		}
	}

	return plugin.Result{
		Status:   overall,
		Report:   strings.Join(report, ";"),
		Perfdata: perfdata,
	}, nil
}

// classify applies the threshold precedence to one reading:
// critical beats warning beats ok, boundaries inclusive.
func (c *Classifier) classify(r reading.Reading) plugin.Status {
	switch {
	case r.Centi >= c.Critical.Centi:
		return plugin.StatusCritical
	case r.Centi >= c.Warning.Centi:
		return plugin.StatusWarning
	default:
		return plugin.StatusOK
	}
}

// perfdatum renders one performance-data metric in the plugin contract form:
// 'temp'=<channel>;<raw>;<warning>;<critical>.
func (c *Classifier) perfdatum(r reading.Reading) string {
	return fmt.Sprintf("'temp'=%d;%s;%s;%s", r.Channel, r.Raw, c.Warning.Raw, c.Critical.Raw)
}
