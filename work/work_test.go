package work

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(date, title string) Entry {
	return Entry{Date: date, Title: title, Slug: date, Style: "雨窗"}
}

func TestReadFileMissing(t *testing.T) {
	l := ReadFile(filepath.Join(t.TempDir(), "works.json"))
	assert.Empty(t, l.Entries)
}

func TestReadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "works.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"oops":`), 0o644))

	l := ReadFile(path)
	assert.Empty(t, l.Entries)
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "works.json")

	l := &List{}
	l.Upsert(entry("2026-03-14", "小雨"))
	require.NoError(t, l.WriteFile(path))

	got := ReadFile(path)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "2026-03-14", got.Entries[0].Date)

	// On-disk shape is a bare array.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
}

func TestUpsertPrependsAndReplaces(t *testing.T) {
	l := &List{}
	l.Upsert(entry("2026-03-12", "a"))
	l.Upsert(entry("2026-03-13", "b"))

	require.Len(t, l.Entries, 2)
	assert.Equal(t, "2026-03-13", l.Entries[0].Date, "newest first")

	l.Upsert(entry("2026-03-12", "a2"))
	require.Len(t, l.Entries, 2)
	assert.Equal(t, "2026-03-12", l.Entries[0].Date)
	assert.Equal(t, "a2", l.Entries[0].Title)
	assert.Equal(t, "2026-03-13", l.Entries[1].Date)
}

func TestPickStyleDeterministic(t *testing.T) {
	a := PickStyle("2026-03-14", "")
	b := PickStyle("2026-03-14", "")
	assert.Equal(t, a, b)

	override := PickStyle("2026-03-14", "radio")
	assert.Equal(t, "radio", override.ID)

	fallback := PickStyle("2026-03-14", "no-such-style")
	assert.Equal(t, Styles[0].ID, fallback.ID)
}

func TestRender(t *testing.T) {
	r := NewRenderer()

	for _, style := range Styles {
		t.Run(style.ID, func(t *testing.T) {
			var buf bytes.Buffer
			err := r.Render(&buf, style, "2026-03-14", "今日小作品", "今天做了一個 **小東西**。")
			require.NoError(t, err)

			out := buf.String()
			assert.Contains(t, out, "今日小作品")
			assert.Contains(t, out, "2026-03-14")
			assert.Contains(t, out, "<strong>小東西</strong>")
			assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
		})
	}
}

func TestRenderEscapesTitle(t *testing.T) {
	r := NewRenderer()

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, Styles[0], "2026-03-14", `<script>alert(1)</script>`, "hi"))
	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "first line", Excerpt("first line\nsecond line"))
	assert.Equal(t, "", Excerpt(""))

	long := strings.Repeat("字", 80)
	assert.Equal(t, strings.Repeat("字", 60), Excerpt(long))
}
