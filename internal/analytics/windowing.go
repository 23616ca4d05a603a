package analytics

import (
	"fmt"
	"time"
)

// Window defines the temporal scope of an analysis. A zero Start or End
// means unbounded on that side; the zero Window is all-time. Scores and
// shares computed under different windows are not comparable.
type Window struct {
	Start time.Time `json:"start,omitempty"`
	End   time.Time `json:"end,omitempty"`
	// Label is a human-readable description of how the window was derived
	// (preset name or year range). Informational only.
	Label string `json:"label,omitempty"`
}

// windowPresets maps named presets to a trailing month count. Zero months
// means all-time.
var windowPresets = map[string]int{
	"last-3-months":  3,
	"last-6-months":  6,
	"last-12-months": 12,
	"last-18-months": 18,
	"last-24-months": 24,
	"all-time":       0,
}

// ResolveWindow maps a named preset to a concrete [start, end] window
// anchored at now. The analyses themselves only ever see resolved windows.
func ResolveWindow(preset string, now time.Time) (Window, error) {
	months, ok := windowPresets[preset]
	if !ok {
		return Window{}, fmt.Errorf("unknown window preset %q", preset)
	}
	if months == 0 {
		return Window{Label: "all time"}, nil
	}
	return Window{
		Start: now.AddDate(0, -months, 0),
		End:   now,
		Label: fmt.Sprintf("last %d months", months),
	}, nil
}

// YearWindow resolves a single year or an inclusive year range to a window.
func YearWindow(startYear, endYear int) Window {
	if endYear < startYear {
		endYear = startYear
	}
	label := fmt.Sprintf("%d", startYear)
	if endYear != startYear {
		label = fmt.Sprintf("%d-%d", startYear, endYear)
	}
	return Window{
		Start: time.Date(startYear, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(endYear, time.December, 31, 23, 59, 59, 999999999, time.UTC),
		Label: label,
	}
}

// Contains reports whether t falls inside the window, inclusive on both
// ends. Zero bounds are treated as unbounded.
func (w Window) Contains(t time.Time) bool {
	if !w.Start.IsZero() && t.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && t.After(w.End) {
		return false
	}
	return true
}

// IsAllTime reports whether the window is unbounded on both sides.
func (w Window) IsAllTime() bool {
	return w.Start.IsZero() && w.End.IsZero()
}

// monthStart normalizes a timestamp to the first instant of its month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthBuckets returns the start of every month from start through end,
// ascending. Empty months are included so timeline consumers can render
// continuous axes.
func MonthBuckets(start, end time.Time) []time.Time {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return nil
	}
	var buckets []time.Time
	last := monthStart(end)
	for current := monthStart(start); !current.After(last); current = current.AddDate(0, 1, 0) {
		buckets = append(buckets, current)
	}
	return buckets
}

// MonthLabel formats a bucket start for timeline output.
func MonthLabel(t time.Time) string {
	return t.Format("2006-01")
}
