package analytics

import (
	"math"
	"testing"
	"time"

	"issuelens/internal/tracker"
)

func labeledIssue(id int, labels []string, state tracker.State, createdAt time.Time) tracker.Issue {
	issue := tracker.Issue{
		ID:        id,
		Title:     "issue",
		State:     state,
		Labels:    labels,
		CreatedAt: createdAt,
	}
	if state == tracker.StateClosed {
		closed := createdAt.AddDate(0, 0, 7)
		issue.ClosedAt = &closed
	}
	return issue
}

// Scenario: 4 bug-labeled, 3 enhancement-labeled and 3 unlabeled issues
// yield 40/30/30 shares, and the Other breakdown has no raw labels to
// surface.
func TestAggregateCategoriesShares(t *testing.T) {
	var issues []tracker.Issue
	id := 1
	for i := 0; i < 4; i++ {
		issues = append(issues, labeledIssue(id, []string{"kind/bug"}, tracker.StateOpen, day0))
		id++
	}
	for i := 0; i < 3; i++ {
		issues = append(issues, labeledIssue(id, []string{"enhancement"}, tracker.StateOpen, day0))
		id++
	}
	for i := 0; i < 3; i++ {
		issues = append(issues, labeledIssue(id, nil, tracker.StateOpen, day0))
		id++
	}

	report := AggregateCategories(issues, Window{}, Filters{}, 10)

	if report.Total != 10 {
		t.Fatalf("Total = %d, want 10", report.Total)
	}
	wantShares := map[Category]float64{
		CategoryBug:        40,
		CategoryFeature:    30,
		CategoryOther:      30,
		CategoryDocs:       0,
		CategoryDependency: 0,
		CategoryInfra:      0,
	}
	for c, want := range wantShares {
		if got := report.ShareByCategory[c]; math.Abs(got-want) > 1e-9 {
			t.Errorf("share[%s] = %v, want %v", c, got, want)
		}
	}
	if len(report.OtherLabels) != 0 {
		t.Errorf("unlabeled issues have no raw label to surface, got %v", report.OtherLabels)
	}
}

func TestAggregateCategoriesShareConservation(t *testing.T) {
	issues := []tracker.Issue{
		labeledIssue(1, []string{"bug"}, tracker.StateOpen, day0),
		labeledIssue(2, []string{"area/docs"}, tracker.StateClosed, day0),
		labeledIssue(3, []string{"needs-triage"}, tracker.StateOpen, day0),
		labeledIssue(4, []string{"dependencies"}, tracker.StateClosed, day0),
		labeledIssue(5, []string{"build"}, tracker.StateOpen, day0),
		labeledIssue(6, []string{"feature"}, tracker.StateClosed, day0),
		labeledIssue(7, []string{"bug", "area/cli"}, tracker.StateClosed, day0),
	}

	report := AggregateCategories(issues, Window{}, Filters{}, 10)

	sum := 0.0
	for _, c := range CategoryOrder {
		sum += report.ShareByCategory[c]
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("shares sum to %v, want 100", sum)
	}

	// All six categories are reported even when empty.
	for _, c := range CategoryOrder {
		if _, ok := report.ShareByCategory[c]; !ok {
			t.Errorf("category %s missing from shares", c)
		}
		if _, ok := report.StateByCategory[c]; !ok {
			t.Errorf("category %s missing from state table", c)
		}
	}
}

func TestAggregateCategoriesEmptySet(t *testing.T) {
	report := AggregateCategories(nil, Window{}, Filters{}, 10)
	if report.Total != 0 {
		t.Fatalf("Total = %d, want 0", report.Total)
	}
	for _, c := range CategoryOrder {
		if report.ShareByCategory[c] != 0 {
			t.Errorf("share[%s] = %v, want 0 for empty set", c, report.ShareByCategory[c])
		}
	}
}

func TestAggregateCategoriesStates(t *testing.T) {
	issues := []tracker.Issue{
		labeledIssue(1, []string{"bug"}, tracker.StateOpen, day0),
		labeledIssue(2, []string{"bug"}, tracker.StateClosed, day0),
		labeledIssue(3, []string{"bug"}, tracker.StateClosed, day0),
	}
	report := AggregateCategories(issues, Window{}, Filters{}, 10)
	sc := report.StateByCategory[CategoryBug]
	if sc.Open != 1 || sc.Closed != 2 {
		t.Errorf("bug state split = %+v, want {Open:1 Closed:2}", sc)
	}
}

func TestAggregateCategoriesFilters(t *testing.T) {
	y2023 := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	y2024 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	issues := []tracker.Issue{
		labeledIssue(1, []string{"kind/bug"}, tracker.StateOpen, y2023),
		labeledIssue(2, []string{"kind/bug", "area/cli"}, tracker.StateOpen, y2024),
		labeledIssue(3, []string{"enhancement"}, tracker.StateOpen, y2024),
	}

	tests := []struct {
		name      string
		filters   Filters
		wantTotal int
	}{
		{"NoFilters", Filters{}, 3},
		{"YearRange", Filters{StartYear: 2024, EndYear: 2024}, 2},
		{"CategoryAllowList", Filters{Categories: []Category{CategoryBug}}, 2},
		{"LabelSubstring", Filters{LabelNeedles: []string{"area/"}}, 1},
		{"CombinedAND", Filters{StartYear: 2024, Categories: []Category{CategoryBug}}, 1},
		{"NoMatches", Filters{LabelNeedles: []string{"nonexistent"}}, 0},
		{"CaseInsensitiveNeedle", Filters{LabelNeedles: []string{"AREA/CLI"}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := AggregateCategories(issues, Window{}, tt.filters, 10)
			if report.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", report.Total, tt.wantTotal)
			}
		})
	}
}

func TestOtherBreakdown(t *testing.T) {
	issues := []tracker.Issue{
		labeledIssue(1, []string{"status/triage", "status/needs-reproduction"}, tracker.StateOpen, day0),
		labeledIssue(2, []string{"status/triage"}, tracker.StateOpen, day0),
		labeledIssue(3, []string{"wontfix"}, tracker.StateClosed, day0),
		// A bug issue must not leak into the Other breakdown.
		labeledIssue(4, []string{"kind/bug", "status/triage"}, tracker.StateOpen, day0),
	}

	report := AggregateCategories(issues, Window{}, Filters{}, 10)

	if len(report.OtherLabels) == 0 {
		t.Fatalf("expected Other-bucket labels")
	}
	if report.OtherLabels[0].Label != "status/triage" || report.OtherLabels[0].Issues != 2 {
		t.Errorf("top label = %+v, want status/triage with 2 issues", report.OtherLabels[0])
	}

	var statusFamily *FamilyCount
	for i := range report.OtherFamilies {
		if report.OtherFamilies[i].Family == "status" {
			statusFamily = &report.OtherFamilies[i]
		}
	}
	if statusFamily == nil {
		t.Fatalf("expected a status family, got %v", report.OtherFamilies)
	}
	if statusFamily.Issues != 2 {
		t.Errorf("status family issues = %d, want 2", statusFamily.Issues)
	}
	if len(statusFamily.CommonSublabels) == 0 || statusFamily.CommonSublabels[0].Label != "triage" {
		t.Errorf("common sublabels = %v, want triage first", statusFamily.CommonSublabels)
	}
}
