// Package rollup folds session message events into per-day usage rollups and
// a bounded feed of recent tool actions.
package rollup

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/openclaw/odaily/core"
)

// RecentCap is the maximum length of the recent-action feed.
const RecentCap = 20

// Bucketer accumulates events into calendar-day buckets under a fixed
// timezone. The fold is commutative: feeding the same events in any order,
// split across any number of files, yields identical day rollups. Only the
// recent feed depends on order, and that is re-sorted by timestamp in
// Recent.
type Bucketer struct {
	loc        *time.Location
	summarizer *Summarizer
	days       map[string]*core.DayRollup
	recent     []recentEntry
}

// recentEntry pairs the display action with its instant for the final sort.
type recentEntry struct {
	ts     time.Time
	action core.RecentAction
}

// New returns a Bucketer bucketing into loc.
func New(loc *time.Location) *Bucketer {
	return &Bucketer{
		loc:        loc,
		summarizer: NewSummarizer(),
		days:       make(map[string]*core.DayRollup),
	}
}

// Add folds one event into its day bucket.
func (b *Bucketer) Add(ev core.Event) {
	day := b.day(core.DayKey(ev.Timestamp, b.loc))

	switch ev.Role {
	case "user":
		day.UserMessages++
	case "assistant":
		day.AssistantMessages++
	}

	for _, call := range ev.ToolCalls {
		day.ToolCalls++
		day.ToolUsage[call.Name]++
		b.recent = append(b.recent, recentEntry{
			ts: ev.Timestamp,
			action: core.RecentAction{
				Time:    core.DisplayTime(ev.Timestamp, b.loc),
				Tool:    call.Name,
				Summary: b.summarizer.Summarize(call.Name, call.Arguments),
			},
		})
	}

	if ev.Usage != nil {
		day.InputTokens += ev.Usage.Input
		day.OutputTokens += ev.Usage.Output
		day.TotalTokens += ev.Usage.Total
		day.CostUSD += ev.Usage.CostUSD
	}
}

func (b *Bucketer) day(key string) *core.DayRollup {
	if d, ok := b.days[key]; ok {
		return d
	}
	d := &core.DayRollup{
		Date:      key,
		ToolUsage: make(map[string]int),
	}
	b.days[key] = d
	return d
}

// Days returns the finalized rollups sorted ascending by date, with category
// counts and the day summary derived from the taxonomy. Tasks default to
// empty until annotations are attached.
func (b *Bucketer) Days() []core.DayRollup {
	out := make([]core.DayRollup, 0, len(b.days))
	for _, d := range b.days {
		d.SummaryCounts = Categorize(d.ToolUsage)
		d.Summary = Summarize(d.SummaryCounts)
		if d.Tasks == nil {
			d.Tasks = []json.RawMessage{}
		}
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// Recent returns at most n actions sorted descending by timestamp. The sort
// is stable, so actions sharing an instant keep their encounter order.
func (b *Bucketer) Recent(n int) []core.RecentAction {
	entries := make([]recentEntry, len(b.recent))
	copy(entries, b.recent)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ts.After(entries[j].ts)
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	actions := make([]core.RecentAction, len(entries))
	for i, e := range entries {
		actions[i] = e.action
	}
	return actions
}
