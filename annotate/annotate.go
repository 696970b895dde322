// Package annotate loads externally authored per-day annotations (tasks and
// surprise notes) and attaches them to computed day rollups. Annotation files
// are optional and independently evolving: a missing or malformed file never
// fails the run, it just contributes nothing.
package annotate

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/openclaw/odaily/core"
)

// Tasks loads a date→task-list mapping. Task records are opaque and passed
// through verbatim. Entries that are not arrays are dropped.
func Tasks(path string) map[string][]json.RawMessage {
	out := make(map[string][]json.RawMessage)
	for date, raw := range loadMap(path) {
		var list []json.RawMessage
		if err := json.Unmarshal(raw, &list); err != nil {
			continue
		}
		out[date] = list
	}
	return out
}

// AttachTasks sets each rollup's task list from the mapping. Days without an
// entry keep their empty default.
func AttachTasks(rows []core.DayRollup, tasks map[string][]json.RawMessage) {
	for i := range rows {
		if list, ok := tasks[rows[i].Date]; ok && list != nil {
			rows[i].Tasks = list
		}
	}
}

// Surprises loads the date→surprise mapping with values left raw, since an
// entry may be a single string or a list.
func Surprises(path string) map[string]json.RawMessage {
	return loadMap(path)
}

// Surprise resolves the entry for one date into a list: lists pass through,
// scalars are wrapped, absent or null yields an empty list.
func Surprise(m map[string]json.RawMessage, dateKey string) []string {
	raw, ok := m[dateKey]
	if !ok {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		if list == nil {
			// JSON null unmarshals into a nil slice.
			return []string{}
		}
		return list
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		return []string{}
	}
	switch val := v.(type) {
	case []any:
		out := make([]string, 0, len(val))
		for _, e := range val {
			out = append(out, fmt.Sprint(e))
		}
		return out
	default:
		return []string{fmt.Sprint(val)}
	}
}

// loadMap reads a JSON object file keyed by date. Missing, unreadable, or
// malformed content degrades to an empty mapping.
func loadMap(path string) map[string]json.RawMessage {
	data, err := os.ReadFile(path)
	if err != nil {
		return map[string]json.RawMessage{}
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil || m == nil {
		return map[string]json.RawMessage{}
	}
	return m
}
