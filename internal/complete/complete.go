// Package complete derives entry suggestions from historical task labels.
package complete

import (
	"strings"

	"tlog/internal/timelog"
)

// Task labels use ":" to mark a sub-project and "--" to mark a sub-task,
// by convention. Completion suggests one segment at a time: sub-project
// boundaries first, then sub-task boundaries, then full labels.
const (
	subprojectSep = ":"
	subtaskSep    = "--"
)

// Completer holds a deduplicated snapshot of distinct task labels. It keeps
// no reference to the store it was built from; rebuild it, or feed new
// labels through Add, when fresh entries should influence suggestions.
type Completer struct {
	labels []string
	seen   map[string]struct{}
}

// New returns an empty Completer.
func New() *Completer {
	return &Completer{seen: make(map[string]struct{})}
}

// FromTimelog snapshots the distinct task labels of tl, in first-seen order.
func FromTimelog(tl *timelog.Timelog) *Completer {
	c := New()
	for e := range tl.All() {
		c.Add(e.Task)
	}
	return c
}

// Add inserts a label into the candidate pool unless already present.
func (c *Completer) Add(label string) {
	if _, ok := c.seen[label]; ok {
		return
	}
	c.seen[label] = struct{}{}
	c.labels = append(c.labels, label)
}

// Len returns the number of distinct labels in the pool.
func (c *Completer) Len() int {
	return len(c.labels)
}

// Complete produces candidates for the text typed so far. It only completes
// at the end of a non-empty line; anywhere else it returns no candidates
// and the cursor position unchanged. The returned start position is always
// 0: an accepted candidate replaces the whole line, not just the suffix.
func (c *Completer) Complete(line string, pos int) (int, []string) {
	if line == "" || pos != len(line) {
		return pos, nil
	}

	// Which separator to suggest next depends on what the line already has.
	var sep string
	switch {
	case !strings.Contains(line, subprojectSep):
		sep = subprojectSep
	case !strings.Contains(line, subtaskSep):
		sep = subtaskSep
	}

	var candidates []string
	seen := make(map[string]struct{})
	for _, label := range c.labels {
		if !strings.HasPrefix(label, line) {
			continue
		}
		suggestion := label
		if sep != "" {
			if i := strings.Index(label, sep); i >= 0 {
				suggestion = strings.TrimSpace(label[:i])
			}
		}
		if _, ok := seen[suggestion]; ok {
			continue
		}
		seen[suggestion] = struct{}{}
		candidates = append(candidates, suggestion)
	}
	return 0, candidates
}
