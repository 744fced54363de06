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

package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
)

// journalHandler mirrors records to the systemd journal. Attribute keys are
// uppercased to satisfy the journal field-name contract (^[A-Z_][A-Z0-9_]*).
type journalHandler struct {
	level slog.Level
	attrs []slog.Attr
}

// newJournalHandler returns nil when no journal socket is present, so the
// sink degrades silently on non-systemd hosts.
func newJournalHandler(level slog.Level) slog.Handler {
	if !journal.Enabled() {
		return nil
	}
	return &journalHandler{level: level}
}

func (j *journalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= j.level
}

func (j *journalHandler) Handle(_ context.Context, rec slog.Record) error {
	vars := make(map[string]string, rec.NumAttrs()+len(j.attrs))
	for _, a := range j.attrs {
		vars[journalFieldName(a.Key)] = a.Value.String()
	}
	rec.Attrs(func(a slog.Attr) bool {
		vars[journalFieldName(a.Key)] = a.Value.String()
		return true
	})
	return journal.Send(rec.Message, journalPriority(rec.Level), vars)
}

func (j *journalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &journalHandler{level: j.level}
	next.attrs = append(append(next.attrs, j.attrs...), attrs...)
	return next
}

func (j *journalHandler) WithGroup(name string) slog.Handler {
	// journal fields are flat; group names are dropped
	return j
}

func journalPriority(level slog.Level) journal.Priority {
	switch {
	case level >= slog.LevelError:
		return journal.PriErr
	case level >= slog.LevelWarn:
		return journal.PriWarning
	case level >= slog.LevelInfo:
		return journal.PriInfo
	default:
		return journal.PriDebug
	}
}

func journalFieldName(key string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(key) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	name := b.String()
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		name = fmt.Sprintf("X%s", name)
	}
	return name
}
