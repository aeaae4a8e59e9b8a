// Package report summarizes a day of timelog entries.
package report

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"tlog/internal/timelog"
)

// SlackMarker prefixes labels that do not count as work time, like breaks
// and lunch.
const SlackMarker = "**"

// Line is the time spent on one task label, aggregated across the day.
type Line struct {
	Task     string
	Duration time.Duration
	Slack    bool
}

// Summary is the per-day aggregation of entry durations.
type Summary struct {
	Lines []Line
	Work  time.Duration
	Slack time.Duration
	Start time.Time // first entry of the day, the arrival mark
	End   time.Time // last entry of the day
}

// ForDay aggregates the entries of a single day, one line per distinct
// label in first-seen order. An entry's duration spans from the previous
// entry's stop time, so the first entry of the day contributes none.
func ForDay(entries iter.Seq[timelog.Entry]) Summary {
	var s Summary
	idx := make(map[string]int)
	var prev time.Time
	first := true
	for e := range entries {
		if first {
			s.Start = e.Stop
			first = false
		} else {
			d := e.Stop.Sub(prev)
			slack := strings.HasPrefix(e.Task, SlackMarker)
			i, ok := idx[e.Task]
			if !ok {
				i = len(s.Lines)
				idx[e.Task] = i
				s.Lines = append(s.Lines, Line{Task: e.Task, Slack: slack})
			}
			s.Lines[i].Duration += d
			if slack {
				s.Slack += d
			} else {
				s.Work += d
			}
		}
		prev = e.Stop
		s.End = e.Stop
	}
	return s
}

// FormatDuration renders d with minute resolution, e.g. "6 h 35 min".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	return fmt.Sprintf("%d h %d min", h, m)
}
