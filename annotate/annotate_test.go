package annotate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/openclaw/odaily/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "annotations.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTasksMissingFile(t *testing.T) {
	tasks := Tasks(filepath.Join(t.TempDir(), "tasks.json"))
	assert.Empty(t, tasks)
}

func TestTasksMalformedFile(t *testing.T) {
	tasks := Tasks(writeFile(t, `{"2026-03-14": [`))
	assert.Empty(t, tasks)
}

func TestTasksNonObjectFile(t *testing.T) {
	tasks := Tasks(writeFile(t, `["not", "a", "map"]`))
	assert.Empty(t, tasks)
}

func TestTasksPassThrough(t *testing.T) {
	path := writeFile(t, `{
		"2026-03-14": [{"title": "ship rollup", "done": true}, {"title": "water plants"}],
		"2026-03-15": "not a list",
		"2026-03-16": []
	}`)

	tasks := Tasks(path)
	require.Len(t, tasks, 2)
	require.Len(t, tasks["2026-03-14"], 2)
	assert.JSONEq(t, `{"title": "ship rollup", "done": true}`, string(tasks["2026-03-14"][0]))
	assert.Empty(t, tasks["2026-03-16"])
	_, ok := tasks["2026-03-15"]
	assert.False(t, ok, "non-array entry dropped")
}

func TestAttachTasks(t *testing.T) {
	rows := []core.DayRollup{
		{Date: "2026-03-14", Tasks: []json.RawMessage{}},
		{Date: "2026-03-15", Tasks: []json.RawMessage{}},
	}
	tasks := map[string][]json.RawMessage{
		"2026-03-14": {json.RawMessage(`{"title":"x"}`)},
	}

	AttachTasks(rows, tasks)

	require.Len(t, rows[0].Tasks, 1)
	assert.NotNil(t, rows[1].Tasks)
	assert.Empty(t, rows[1].Tasks)
}

func TestSurprise(t *testing.T) {
	tests := []struct {
		name    string
		content string
		date    string
		want    []string
	}{
		{
			name:    "plain string wrapped",
			content: `{"2026-03-14": "rain"}`,
			date:    "2026-03-14",
			want:    []string{"rain"},
		},
		{
			name:    "list passes through",
			content: `{"2026-03-14": ["rain", "wind"]}`,
			date:    "2026-03-14",
			want:    []string{"rain", "wind"},
		},
		{
			name:    "absent date",
			content: `{"2026-03-14": "rain"}`,
			date:    "2026-03-15",
			want:    []string{},
		},
		{
			name:    "null entry",
			content: `{"2026-03-14": null}`,
			date:    "2026-03-14",
			want:    []string{},
		},
		{
			name:    "number stringified",
			content: `{"2026-03-14": 7}`,
			date:    "2026-03-14",
			want:    []string{"7"},
		},
		{
			name:    "mixed list stringified",
			content: `{"2026-03-14": ["rain", 3]}`,
			date:    "2026-03-14",
			want:    []string{"rain", "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Surprises(writeFile(t, tt.content))
			assert.Equal(t, tt.want, Surprise(m, tt.date))
		})
	}
}

func TestSurpriseNullEntryIsEmptyList(t *testing.T) {
	m := map[string]json.RawMessage{"2026-03-14": json.RawMessage(`null`)}

	got := Surprise(m, "2026-03-14")
	require.NotNil(t, got)
	assert.Equal(t, []string{}, got)
}

func TestSurpriseMissingFile(t *testing.T) {
	m := Surprises(filepath.Join(t.TempDir(), "surprise.json"))
	assert.Equal(t, []string{}, Surprise(m, "2026-03-14"))
}
