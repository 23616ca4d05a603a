package analytics

import (
	"math"
	"testing"

	"issuelens/internal/tracker"
)

// closedIssue builds a closed issue with optional labeled/assigned events
// at the given day offsets (negative offset means no such event).
func closedIssue(id int, labeledDay, assignedDay, closedDay int) tracker.Issue {
	closed := day0.AddDate(0, 0, closedDay)
	issue := tracker.Issue{
		ID:        id,
		State:     tracker.StateClosed,
		CreatedAt: day0,
		ClosedAt:  &closed,
		Events: []tracker.Event{
			{Type: tracker.EventOpened, OccurredAt: day0},
			{Type: tracker.EventClosed, OccurredAt: closed},
		},
	}
	if labeledDay >= 0 {
		issue.Events = append(issue.Events, tracker.Event{
			Type: tracker.EventLabeled, Label: "kind/bug",
			OccurredAt: day0.AddDate(0, 0, labeledDay),
		})
	}
	if assignedDay >= 0 {
		issue.Events = append(issue.Events, tracker.Event{
			Type: tracker.EventAssigned, Actor: "dev",
			OccurredAt: day0.AddDate(0, 0, assignedDay),
		})
	}
	return issue
}

// Days-to-label grows together with days-to-close, so the fitted label
// trend is positive: later labeling coincided with slower closes.
func TestAnalyzeResolutionCoMovingTrend(t *testing.T) {
	issues := []tracker.Issue{
		closedIssue(1, 1, -1, 5),
		closedIssue(2, 3, -1, 15),
		closedIssue(3, 6, -1, 30),
	}

	report := AnalyzeResolution(issues)

	if len(report.LabelSamples) != 3 {
		t.Fatalf("len(LabelSamples) = %d, want 3", len(report.LabelSamples))
	}
	if !report.LabelTrend.Defined {
		t.Fatalf("label trend should be defined with 3 samples")
	}
	if report.LabelTrend.Slope <= 0 {
		t.Errorf("slope = %v, want positive (later labeling, slower close)", report.LabelTrend.Slope)
	}
	// No assignments anywhere: series empty, trend undefined.
	if len(report.AssignSamples) != 0 || report.AssignTrend.Defined {
		t.Errorf("assign series should be empty and undefined, got %v / %+v",
			report.AssignSamples, report.AssignTrend)
	}
}

func TestAnalyzeResolutionSampleValues(t *testing.T) {
	issues := []tracker.Issue{closedIssue(1, 2, 4, 10)}

	report := AnalyzeResolution(issues)

	if len(report.LabelSamples) != 1 || len(report.AssignSamples) != 1 {
		t.Fatalf("expected one sample per series, got %d / %d",
			len(report.LabelSamples), len(report.AssignSamples))
	}
	ls := report.LabelSamples[0]
	if math.Abs(ls.DaysToEvent-2) > 1e-9 || math.Abs(ls.DaysToClose-10) > 1e-9 {
		t.Errorf("label sample = %+v, want (2, 10)", ls)
	}
	as := report.AssignSamples[0]
	if math.Abs(as.DaysToEvent-4) > 1e-9 {
		t.Errorf("assign sample = %+v, want daysToEvent 4", as)
	}
}

func TestAnalyzeResolutionExclusions(t *testing.T) {
	open := tracker.Issue{ID: 1, State: tracker.StateOpen, CreatedAt: day0}

	// Closed state but no close timestamp from any source: excluded and
	// tallied, never silently dropped.
	broken := tracker.Issue{ID: 2, State: tracker.StateClosed, CreatedAt: day0}

	// Labeled only after close: contributes no label sample.
	lateLabel := closedIssue(3, -1, -1, 5)
	lateLabel.Events = append(lateLabel.Events, tracker.Event{
		Type: tracker.EventLabeled, OccurredAt: day0.AddDate(0, 0, 9),
	})

	report := AnalyzeResolution([]tracker.Issue{open, broken, lateLabel})

	if report.ClosedIssues != 1 {
		t.Errorf("ClosedIssues = %d, want 1", report.ClosedIssues)
	}
	if report.ExcludedIssues != 1 {
		t.Errorf("ExcludedIssues = %d, want 1", report.ExcludedIssues)
	}
	if len(report.LabelSamples) != 0 {
		t.Errorf("an issue never labeled before closing contributes no sample, got %v",
			report.LabelSamples)
	}
}

func TestAnalyzeResolutionDegenerateFit(t *testing.T) {
	issues := []tracker.Issue{closedIssue(1, 2, -1, 10)}

	report := AnalyzeResolution(issues)

	if report.LabelTrend.Defined {
		t.Errorf("a single sample must yield an undefined trend, not a flat one: %+v",
			report.LabelTrend)
	}
	if report.LabelTrend.Samples != 1 {
		t.Errorf("Samples = %d, want 1", report.LabelTrend.Samples)
	}
}

func TestAnalyzeResolutionUnsortedEvents(t *testing.T) {
	closed := day0.AddDate(0, 0, 10)
	issue := tracker.Issue{
		ID: 1, State: tracker.StateClosed, CreatedAt: day0, ClosedAt: &closed,
		// Deliberately out of order: the analyzer must not assume sorting.
		Events: []tracker.Event{
			{Type: tracker.EventLabeled, OccurredAt: day0.AddDate(0, 0, 6)},
			{Type: tracker.EventLabeled, OccurredAt: day0.AddDate(0, 0, 2)},
			{Type: tracker.EventClosed, OccurredAt: closed},
			{Type: tracker.EventOpened, OccurredAt: day0},
		},
	}

	report := AnalyzeResolution([]tracker.Issue{issue})
	if len(report.LabelSamples) != 1 {
		t.Fatalf("expected one label sample")
	}
	if math.Abs(report.LabelSamples[0].DaysToEvent-2) > 1e-9 {
		t.Errorf("daysToEvent = %v, want 2 (first labeled event)", report.LabelSamples[0].DaysToEvent)
	}
}

func TestAnalyzeResolutionFitAgainstKnownLine(t *testing.T) {
	// daysToClose = 2*daysToLabel + 3 exactly.
	issues := []tracker.Issue{
		closedIssue(1, 1, -1, 5),
		closedIssue(2, 2, -1, 7),
		closedIssue(3, 4, -1, 11),
	}

	report := AnalyzeResolution(issues)
	if !report.LabelTrend.Defined {
		t.Fatalf("expected a defined fit")
	}
	if math.Abs(report.LabelTrend.Slope-2) > 1e-9 {
		t.Errorf("slope = %v, want 2", report.LabelTrend.Slope)
	}
	if math.Abs(report.LabelTrend.Intercept-3) > 1e-9 {
		t.Errorf("intercept = %v, want 3", report.LabelTrend.Intercept)
	}
}
