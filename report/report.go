// Package report assembles the daily rollup envelope and writes the
// daily.json artifact.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/openclaw/odaily/core"
)

// DashboardDays is how many of the most recent days dashboard mode keeps.
const DashboardDays = 7

// Mode selects how rows are sorted and bounded in the emitted report.
type Mode string

const (
	// ModeFull keeps every day, ascending by date.
	ModeFull Mode = "full"
	// ModeDashboard keeps the newest DashboardDays days, descending.
	ModeDashboard Mode = "dashboard"
)

// ParseMode validates a mode name from configuration.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFull, ModeDashboard:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown report mode %q", s)
}

// Build assembles the output envelope. Rows are expected sorted ascending by
// date, as the bucketer produces them; the input slice is not mutated. In
// dashboard mode, keep bounds how many of the newest days survive; a
// non-positive keep falls back to DashboardDays. Full mode ignores keep.
func Build(days []core.DayRollup, recent []core.RecentAction, surprise []string, zone string, mode Mode, keep int) core.Report {
	rows := make([]core.DayRollup, len(days))
	copy(rows, days)

	if mode == ModeDashboard {
		sort.Slice(rows, func(i, j int) bool {
			return rows[i].Date > rows[j].Date
		})
		if keep <= 0 {
			keep = DashboardDays
		}
		if len(rows) > keep {
			rows = rows[:keep]
		}
	}

	if recent == nil {
		recent = []core.RecentAction{}
	}
	if surprise == nil {
		surprise = []string{}
	}

	return core.Report{
		Timezone:      zone,
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
		Rows:          rows,
		RecentActions: recent,
		TodaySurprise: surprise,
	}
}

// WriteFile writes the report atomically using a temporary file and rename,
// so a failure mid-write never clobbers the previous artifact.
func WriteFile(path string, r core.Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".daily-*.json")
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
