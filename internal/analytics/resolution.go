package analytics

import (
	"time"

	"issuelens/internal/tracker"
)

// ResolutionSample pairs an early-action delay with the total time-to-close
// for one closed issue. Durations are fractional days.
type ResolutionSample struct {
	ID          int     `json:"id"`
	DaysToEvent float64 `json:"daysToEvent"`
	DaysToClose float64 `json:"daysToClose"`
}

// ResolutionReport correlates early triage actions with resolution time.
// The trends report correlation only: a negative slope means earlier action
// coincided with faster resolution, a nonnegative slope claims nothing.
type ResolutionReport struct {
	// LabelSamples holds (days-to-first-label, days-to-close) pairs;
	// AssignSamples analogously for the first assignment. An issue that
	// was never labeled (or assigned) before closing contributes no
	// sample to that series.
	LabelSamples  []ResolutionSample `json:"labelSamples"`
	AssignSamples []ResolutionSample `json:"assignSamples"`
	LabelTrend    LinearFit          `json:"labelTrend"`
	AssignTrend   LinearFit          `json:"assignTrend"`
	// ClosedIssues is the number of closed issues considered.
	ClosedIssues int `json:"closedIssues"`
	// ExcludedIssues counts closed records missing a usable close
	// timestamp; they are excluded here, never silently dropped.
	ExcludedIssues int `json:"excludedIssues"`
}

// AnalyzeResolution computes, per closed issue, the elapsed days to the
// first labeled and first assigned event versus the days to close, and fits
// an ordinary least-squares trend to each relationship.
func AnalyzeResolution(issues []tracker.Issue) ResolutionReport {
	report := ResolutionReport{}

	for _, issue := range issues {
		if !issue.IsClosed() {
			continue
		}
		if issue.ClosedAt == nil {
			report.ExcludedIssues++
			continue
		}
		report.ClosedIssues++

		daysToClose := daysBetween(issue.CreatedAt, *issue.ClosedAt)

		if t, ok := firstEventAt(issue, tracker.EventLabeled, *issue.ClosedAt); ok {
			report.LabelSamples = append(report.LabelSamples, ResolutionSample{
				ID:          issue.ID,
				DaysToEvent: daysBetween(issue.CreatedAt, t),
				DaysToClose: daysToClose,
			})
		}
		if t, ok := firstEventAt(issue, tracker.EventAssigned, *issue.ClosedAt); ok {
			report.AssignSamples = append(report.AssignSamples, ResolutionSample{
				ID:          issue.ID,
				DaysToEvent: daysBetween(issue.CreatedAt, t),
				DaysToClose: daysToClose,
			})
		}
	}

	report.LabelTrend = fitSamples(report.LabelSamples)
	report.AssignTrend = fitSamples(report.AssignSamples)
	return report
}

// firstEventAt finds the earliest event of the given type occurring no
// later than the close time. The event history is scanned in full rather
// than assumed sorted.
func firstEventAt(issue tracker.Issue, kind tracker.EventType, closedAt time.Time) (time.Time, bool) {
	var first time.Time
	found := false
	for _, ev := range issue.Events {
		if ev.Type != kind || ev.OccurredAt.After(closedAt) {
			continue
		}
		if !found || ev.OccurredAt.Before(first) {
			first = ev.OccurredAt
			found = true
		}
	}
	return first, found
}

func daysBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours() / 24
}

func fitSamples(samples []ResolutionSample) LinearFit {
	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = s.DaysToEvent
		ys[i] = s.DaysToClose
	}
	return FitOLS(xs, ys)
}
