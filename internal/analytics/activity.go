package analytics

import (
	"slices"

	"issuelens/internal/tracker"
)

// TrackedEventTypes is the fixed set of event types contributing to the
// activity score. The score is bounded by its length.
var TrackedEventTypes = []tracker.EventType{
	tracker.EventOpened,
	tracker.EventCommented,
	tracker.EventLabeled,
	tracker.EventAssigned,
	tracker.EventClosed,
	tracker.EventReferenced,
}

// IssueActivity is the per-issue activity view within a window.
type IssueActivity struct {
	ID       int                           `json:"id"`
	Title    string                        `json:"title"`
	State    tracker.State                 `json:"state"`
	Category Category                      `json:"category"`
	Labels   []string                      `json:"labels,omitempty"`
	Counts   map[tracker.EventType]int     `json:"counts"`
	Terms    map[tracker.EventType]float64 `json:"terms"`
	Score    float64                       `json:"score"`
}

// ActivityReport carries activity scores for the whole population, ranked
// by score descending with ties broken by issue id ascending. Issues with
// zero in-window events score exactly 0 and remain reportable.
type ActivityReport struct {
	Window Window          `json:"window"`
	Issues []IssueActivity `json:"issues"`
}

// ScoreActivity computes the population-normalized activity score for every
// issue over the window. Per event type t, each issue's in-window count is
// divided by the population maximum for t; the score is the sum of those
// terms. A type nobody exercised contributes 0 everywhere, so the score
// stays in [0, len(TrackedEventTypes)] and rewards breadth of engagement
// over a single dominant signal.
func ScoreActivity(issues []tracker.Issue, window Window) ActivityReport {
	report := ActivityReport{Window: window}

	counts := make([]map[tracker.EventType]int, len(issues))
	maxCount := make(map[tracker.EventType]int, len(TrackedEventTypes))

	for i, issue := range issues {
		c := make(map[tracker.EventType]int, len(TrackedEventTypes))
		for _, ev := range issue.Events {
			if !window.Contains(ev.OccurredAt) {
				continue
			}
			if !slices.Contains(TrackedEventTypes, ev.Type) {
				continue
			}
			c[ev.Type]++
		}
		counts[i] = c
		for t, n := range c {
			if n > maxCount[t] {
				maxCount[t] = n
			}
		}
	}

	for i, issue := range issues {
		terms := make(map[tracker.EventType]float64, len(TrackedEventTypes))
		score := 0.0
		for _, t := range TrackedEventTypes {
			if maxCount[t] == 0 {
				terms[t] = 0
				continue
			}
			n := float64(counts[i][t]) / float64(maxCount[t])
			terms[t] = n
			score += n
		}
		report.Issues = append(report.Issues, IssueActivity{
			ID:       issue.ID,
			Title:    issue.Title,
			State:    issue.State,
			Category: Classify(issue.Labels),
			Labels:   issue.Labels,
			Counts:   counts[i],
			Terms:    terms,
			Score:    score,
		})
	}

	slices.SortStableFunc(report.Issues, func(a, b IssueActivity) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return a.ID - b.ID
		}
	})

	return report
}

// Top returns the n highest-scoring issues (all of them when n exceeds the
// population or is non-positive).
func (r ActivityReport) Top(n int) []IssueActivity {
	if n <= 0 || n > len(r.Issues) {
		return r.Issues
	}
	return r.Issues[:n]
}
