package analytics

import (
	"slices"
	"time"

	"issuelens/internal/tracker"
)

// ImpactIssue is one multi-area issue in the ranked view.
type ImpactIssue struct {
	ID        int           `json:"id"`
	Title     string        `json:"title"`
	State     tracker.State `json:"state"`
	Creator   string        `json:"creator,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	Areas     []string      `json:"areas"`
	AreaCount int           `json:"areaCount"`
}

// ImpactSummary condenses the multi-area population.
type ImpactSummary struct {
	// TotalAreas is the number of distinct areas appearing in multi-area
	// issues.
	TotalAreas int `json:"totalAreas"`
	// AvgAreasPerImpactedIssue is the mean distinct-area count over the
	// ranked set.
	AvgAreasPerImpactedIssue float64 `json:"avgAreasPerImpactedIssue"`
	// MaxAreaCount is the widest single issue.
	MaxAreaCount int `json:"maxAreaCount"`
}

// TimelineBucket is one month of the impacted-issue creation timeline.
type TimelineBucket struct {
	Period string `json:"period"`
	Count  int    `json:"count"`
}

// ImpactReport is the cross-area impact view. Only issues carrying two or
// more distinct area labels participate; a single-area issue contributes
// nothing, not even to AreaFrequency.
type ImpactReport struct {
	Window Window `json:"window"`
	// Ranked is sorted by area count descending, then issue id ascending.
	Ranked []ImpactIssue `json:"ranked"`
	// AreaFrequency counts, per area, the multi-area issues containing it.
	AreaFrequency map[string]int `json:"areaFrequency"`
	// StateSplit is the open/closed distribution of the ranked set.
	StateSplit StateCount    `json:"stateSplit"`
	Summary    ImpactSummary `json:"summary"`
	// Timeline buckets ranked issues by creation month, ascending and
	// zero-filled, so charts render continuous axes.
	Timeline []TimelineBucket `json:"timeline"`
}

// AnalyzeImpact identifies issues created inside the window that touch at
// least two distinct codebase areas, ranks them by breadth, and tabulates
// how often each area appears in them.
func AnalyzeImpact(issues []tracker.Issue, window Window) ImpactReport {
	report := ImpactReport{
		Window:        window,
		AreaFrequency: make(map[string]int),
	}

	areaSum := 0
	for _, issue := range issues {
		if !window.Contains(issue.CreatedAt) {
			continue
		}
		areas := AreaLabels(issue.Labels)
		if len(areas) < 2 {
			continue
		}
		report.Ranked = append(report.Ranked, ImpactIssue{
			ID:        issue.ID,
			Title:     issue.Title,
			State:     issue.State,
			Creator:   issue.Creator,
			CreatedAt: issue.CreatedAt,
			Areas:     areas,
			AreaCount: len(areas),
		})
		areaSum += len(areas)
		for _, area := range areas {
			report.AreaFrequency[area]++
		}
		if issue.IsClosed() {
			report.StateSplit.Closed++
		} else {
			report.StateSplit.Open++
		}
		if len(areas) > report.Summary.MaxAreaCount {
			report.Summary.MaxAreaCount = len(areas)
		}
	}

	slices.SortStableFunc(report.Ranked, func(a, b ImpactIssue) int {
		if a.AreaCount != b.AreaCount {
			return b.AreaCount - a.AreaCount
		}
		return a.ID - b.ID
	})

	report.Summary.TotalAreas = len(report.AreaFrequency)
	if len(report.Ranked) > 0 {
		report.Summary.AvgAreasPerImpactedIssue = float64(areaSum) / float64(len(report.Ranked))
	}

	report.Timeline = impactTimeline(report.Ranked, window)
	return report
}

// impactTimeline buckets ranked issues by creation month across the window.
// An all-time window derives its bounds from the ranked set itself.
func impactTimeline(ranked []ImpactIssue, window Window) []TimelineBucket {
	if len(ranked) == 0 {
		return nil
	}

	start, end := window.Start, window.End
	if start.IsZero() || end.IsZero() {
		minCreated, maxCreated := ranked[0].CreatedAt, ranked[0].CreatedAt
		for _, issue := range ranked[1:] {
			if issue.CreatedAt.Before(minCreated) {
				minCreated = issue.CreatedAt
			}
			if issue.CreatedAt.After(maxCreated) {
				maxCreated = issue.CreatedAt
			}
		}
		if start.IsZero() {
			start = minCreated
		}
		if end.IsZero() {
			end = maxCreated
		}
	}

	buckets := MonthBuckets(start, end)
	if len(buckets) == 0 {
		return nil
	}

	counts := make(map[string]int, len(buckets))
	for _, issue := range ranked {
		counts[MonthLabel(monthStart(issue.CreatedAt))]++
	}

	timeline := make([]TimelineBucket, len(buckets))
	for i, b := range buckets {
		label := MonthLabel(b)
		timeline[i] = TimelineBucket{Period: label, Count: counts[label]}
	}
	return timeline
}
