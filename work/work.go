// Package work manages the daily-work pages: the works.json index that
// tracks one generated page per date, and the HTML page generator itself.
package work

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Entry describes one generated daily-work page in works.json.
type Entry struct {
	Date    string `json:"date"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Excerpt string `json:"excerpt"`
	Style   string `json:"style"`
}

// List holds the work entries, newest first.
type List struct {
	Entries []Entry
}

// ReadFile reads works.json. A missing or malformed file yields an empty
// list; the index is regenerated over time as pages are produced.
func ReadFile(path string) *List {
	data, err := os.ReadFile(path)
	if err != nil {
		return &List{}
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return &List{}
	}
	return &List{Entries: entries}
}

// Upsert replaces any existing entry for the same date and puts the new
// entry first. Other entries keep their relative order.
func (l *List) Upsert(e Entry) {
	kept := make([]Entry, 0, len(l.Entries)+1)
	kept = append(kept, e)
	for _, existing := range l.Entries {
		if existing.Date != e.Date {
			kept = append(kept, existing)
		}
	}
	l.Entries = kept
}

// WriteFile writes the index atomically using a temporary file and rename.
// The on-disk shape is a bare JSON array, matching what the dashboard reads.
func (l *List) WriteFile(path string) error {
	entries := l.Entries
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".works-*.json")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, path)
}
