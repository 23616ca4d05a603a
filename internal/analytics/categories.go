package analytics

import (
	"slices"
	"strings"

	"issuelens/internal/tracker"
)

// Filters narrows the aggregated population. All conditions combine with
// logical AND; zero values disable the corresponding condition.
type Filters struct {
	// StartYear/EndYear bound the creation year, inclusive.
	StartYear int `json:"startYear,omitempty"`
	EndYear   int `json:"endYear,omitempty"`
	// Categories is an allow-list of classified categories.
	Categories []Category `json:"categories,omitempty"`
	// LabelNeedles is an allow-list of case-insensitive raw-label
	// substrings; an issue passes when any label matches any needle.
	LabelNeedles []string `json:"labelNeedles,omitempty"`
}

func (f Filters) match(issue tracker.Issue) bool {
	if f.StartYear != 0 && issue.CreatedAt.Year() < f.StartYear {
		return false
	}
	if f.EndYear != 0 && issue.CreatedAt.Year() > f.EndYear {
		return false
	}
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, Classify(issue.Labels)) {
		return false
	}
	if len(f.LabelNeedles) > 0 && !matchesAnyLabel(issue.Labels, f.LabelNeedles) {
		return false
	}
	return true
}

func matchesAnyLabel(labels, needles []string) bool {
	for _, label := range labels {
		lower := strings.ToLower(label)
		for _, needle := range needles {
			if strings.Contains(lower, strings.ToLower(needle)) {
				return true
			}
		}
	}
	return false
}

// StateCount is the open/closed split of a category.
type StateCount struct {
	Open   int `json:"open"`
	Closed int `json:"closed"`
}

// LabelCount pairs a raw label (or sublabel) with the number of distinct
// issues carrying it.
type LabelCount struct {
	Label  string `json:"label"`
	Issues int    `json:"issues"`
}

// FamilyCount aggregates a label family (prefix before the first '/') over
// the Other bucket, with its most common sublabels.
type FamilyCount struct {
	Family          string       `json:"family"`
	Issues          int          `json:"issues"`
	CommonSublabels []LabelCount `json:"commonSublabels,omitempty"`
}

// CategoryReport is the categorization view of a windowed, filtered issue
// set. All six categories are always present, zero-filled when empty, and
// shares sum to 100% for any non-empty set.
type CategoryReport struct {
	Window Window `json:"window"`
	// Total is the filtered population size.
	Total int `json:"total"`
	// CountByCategory and ShareByCategory cover the filtered set.
	CountByCategory map[Category]int        `json:"countByCategory"`
	ShareByCategory map[Category]float64    `json:"shareByCategory"`
	StateByCategory map[Category]StateCount `json:"stateByCategory"`
	// OtherLabels and OtherFamilies break down the Other bucket of the
	// windowed set before filters, as refinement diagnostics for the
	// classifier rule table. No other component consumes them.
	OtherLabels   []LabelCount  `json:"otherLabels,omitempty"`
	OtherFamilies []FamilyCount `json:"otherFamilies,omitempty"`
}

// AggregateCategories groups issues created inside the window by category
// and open/closed state. topK bounds the Other-bucket diagnostic lists.
func AggregateCategories(issues []tracker.Issue, window Window, filters Filters, topK int) CategoryReport {
	report := CategoryReport{
		Window:          window,
		CountByCategory: make(map[Category]int, len(CategoryOrder)),
		ShareByCategory: make(map[Category]float64, len(CategoryOrder)),
		StateByCategory: make(map[Category]StateCount, len(CategoryOrder)),
	}
	for _, c := range CategoryOrder {
		report.CountByCategory[c] = 0
		report.ShareByCategory[c] = 0
		report.StateByCategory[c] = StateCount{}
	}

	var windowed []tracker.Issue
	for _, issue := range issues {
		if window.Contains(issue.CreatedAt) {
			windowed = append(windowed, issue)
		}
	}

	for _, issue := range windowed {
		if !filters.match(issue) {
			continue
		}
		category := Classify(issue.Labels)
		report.Total++
		report.CountByCategory[category]++
		sc := report.StateByCategory[category]
		if issue.IsClosed() {
			sc.Closed++
		} else {
			sc.Open++
		}
		report.StateByCategory[category] = sc
	}

	if report.Total > 0 {
		for _, c := range CategoryOrder {
			report.ShareByCategory[c] = float64(report.CountByCategory[c]) / float64(report.Total) * 100
		}
	}

	report.OtherLabels, report.OtherFamilies = otherBreakdown(windowed, topK)
	return report
}

// otherBreakdown surfaces the most frequent raw labels and label families
// inside the Other bucket, so a human can refine the classifier rules.
func otherBreakdown(windowed []tracker.Issue, topK int) ([]LabelCount, []FamilyCount) {
	if topK <= 0 {
		topK = 10
	}

	labelIssues := make(map[string]int)
	familyIssues := make(map[string]int)
	sublabelIssues := make(map[string]map[string]int)

	for _, issue := range windowed {
		if Classify(issue.Labels) != CategoryOther {
			continue
		}
		seenLabels := make(map[string]bool)
		seenFamilies := make(map[string]bool)
		for _, label := range issue.Labels {
			if label == "" || seenLabels[label] {
				continue
			}
			seenLabels[label] = true
			labelIssues[label]++

			family, sublabel := LabelFamily(label)
			if !seenFamilies[family] {
				seenFamilies[family] = true
				familyIssues[family]++
			}
			if sublabel != "" {
				if sublabelIssues[family] == nil {
					sublabelIssues[family] = make(map[string]int)
				}
				sublabelIssues[family][sublabel]++
			}
		}
	}

	labels := sortedCounts(labelIssues, topK)

	var families []FamilyCount
	for _, fc := range sortedCounts(familyIssues, topK) {
		families = append(families, FamilyCount{
			Family:          fc.Label,
			Issues:          fc.Issues,
			CommonSublabels: sortedCounts(sublabelIssues[fc.Label], 3),
		})
	}
	return labels, families
}

// sortedCounts flattens a counter to its top-k entries, count descending
// with ties broken alphabetically for deterministic output.
func sortedCounts(counter map[string]int, k int) []LabelCount {
	if len(counter) == 0 {
		return nil
	}
	out := make([]LabelCount, 0, len(counter))
	for label, n := range counter {
		out = append(out, LabelCount{Label: label, Issues: n})
	}
	slices.SortFunc(out, func(a, b LabelCount) int {
		if a.Issues != b.Issues {
			return b.Issues - a.Issues
		}
		return strings.Compare(a.Label, b.Label)
	})
	if len(out) > k {
		out = out[:k]
	}
	return out
}
