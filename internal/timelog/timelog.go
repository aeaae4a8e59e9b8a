// Package timelog implements the plain-text time log store.
//
// The log is one entry per line, "YYYY-MM-DD HH:MM: task", with a single
// blank line between calendar days. Entries must appear in non-decreasing
// timestamp order; the store refuses to load a file that goes back in time.
package timelog

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"strings"
	"time"
)

// TimeFormat is the timestamp layout used by the log file. Minute precision,
// 24-hour clock, no zone.
const TimeFormat = "2006-01-02 15:04"

// Entry is a single recorded activity boundary: the moment a task ended,
// which is implicitly the moment the next one started.
type Entry struct {
	Stop time.Time
	Task string
}

// String renders the entry in the log file grammar.
func (e Entry) String() string {
	return e.Stop.Format(TimeFormat) + ": " + e.Task
}

// Timelog is the ordered collection of entries backed by one text file.
// Entries are non-decreasing by Stop time; the invariant is enforced at
// parse time and preserved by Add.
type Timelog struct {
	entries  []Entry
	filename string
}

// FromString builds an in-memory store from raw log text. The store has no
// backing file, so Save on it fails with ErrNoBackingFile.
func FromString(raw string) (*Timelog, error) {
	entries, err := parse(raw)
	if err != nil {
		return nil, err
	}
	return &Timelog{entries: entries}, nil
}

// FromFile reads the log at path. A missing file starts a new, empty log
// backed by that path; any other read failure is returned.
func FromFile(path string) (*Timelog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		fmt.Fprintf(os.Stderr, "No existing %s, starting new log\n", path)
		raw = nil
	}
	entries, err := parse(string(raw))
	if err != nil {
		return nil, err
	}
	return &Timelog{entries: entries, filename: path}, nil
}

// Filename returns the backing file path, empty for in-memory stores.
func (t *Timelog) Filename() string {
	return t.filename
}

func parse(raw string) ([]Entry, error) {
	var entries []Entry
	for _, line := range strings.Split(raw, "\n") {
		e, ok := parseLine(line)
		if !ok {
			continue
		}
		if len(entries) > 0 && e.Stop.Before(entries[len(entries)-1].Stop) {
			return nil, fmt.Errorf("%w: line %q", ErrTimeRegression, strings.TrimSpace(line))
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// parseLine parses one log line. Blank lines are day separators and lines
// that do not match the grammar are dropped with a warning; neither aborts
// loading. The task text is everything after the first ": ", verbatim, so
// labels may themselves contain colons.
func parseLine(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Entry{}, false
	}
	stamp, task, found := strings.Cut(line, ": ")
	if !found {
		fmt.Fprintf(os.Stderr, "WARNING: ignoring invalid line in timelog: %s\n", line)
		return Entry{}, false
	}
	stop, err := time.ParseInLocation(TimeFormat, stamp, time.Local)
	if err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: ignoring line with invalid date in timelog: %s\n", line)
		return Entry{}, false
	}
	return Entry{Stop: stop, Task: task}, true
}

// Len returns the number of entries in the store.
func (t *Timelog) Len() int {
	return len(t.entries)
}

// All iterates over every entry in stored order.
func (t *Timelog) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range t.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// GetDay iterates, in stored order, over the entries whose Stop falls on
// the same calendar date as day. The sequence is restartable.
func (t *Timelog) GetDay(day time.Time) iter.Seq[Entry] {
	y, m, d := day.Date()
	return func(yield func(Entry) bool) {
		for _, e := range t.entries {
			ey, em, ed := e.Stop.Date()
			if ey == y && em == m && ed == d {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// GetToday iterates over the entries of the current local date.
func (t *Timelog) GetToday() iter.Seq[Entry] {
	return t.GetDay(time.Now())
}

// Add appends an entry stamped with the current local time, truncated to
// the minute the file format stores. The label is kept verbatim; separator
// conventions are interpreted by readers, not enforced here.
func (t *Timelog) Add(task string) {
	t.entries = append(t.entries, Entry{Stop: time.Now().Truncate(time.Minute), Task: task})
}

// Format renders the canonical log text: one entry per line, a single blank
// line before the first entry of each new calendar day, no leading blank
// line. The output parses back into an identical store.
func (t *Timelog) Format() string {
	var b strings.Builder
	var prev time.Time
	for i, e := range t.entries {
		if i > 0 && !sameDay(prev, e.Stop) {
			b.WriteByte('\n')
		}
		prev = e.Stop
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Save overwrites the backing file with the canonical rendering of the log.
// Calling Save on a store without a backing file is a programming error.
func (t *Timelog) Save() error {
	if t.filename == "" {
		return ErrNoBackingFile
	}
	if err := os.WriteFile(t.filename, []byte(t.Format()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", t.filename, err)
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
