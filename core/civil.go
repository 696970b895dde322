package core

import "time"

// DayKey maps an instant to its YYYY-MM-DD calendar date in loc. The same
// instant always produces the same key regardless of the host's local zone.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// DisplayTime renders an instant with time-of-day in loc, for the recent
// activity feed. Display only; never used as a bucketing key.
func DisplayTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006/01/02 15:04")
}
