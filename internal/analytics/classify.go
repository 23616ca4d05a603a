package analytics

import "strings"

// Category is one of the six high-level issue classifications derived from
// raw labels.
type Category string

const (
	CategoryBug        Category = "Bug"
	CategoryFeature    Category = "Feature"
	CategoryDocs       Category = "Docs"
	CategoryDependency Category = "Dependency"
	CategoryInfra      Category = "Infra"
	CategoryOther      Category = "Other"
)

// CategoryOrder is the stable, total order over categories. Classification
// rules are evaluated in this order and the first match wins, so an issue
// never double-counts across categories.
var CategoryOrder = []Category{
	CategoryBug,
	CategoryFeature,
	CategoryDocs,
	CategoryDependency,
	CategoryInfra,
	CategoryOther,
}

// categoryRule maps case-insensitive label substrings to a category. The
// table is data-driven so rules can be refined (e.g. from the Other-bucket
// breakdown) without touching scoring or ranking logic.
type categoryRule struct {
	category Category
	needles  []string
}

var categoryRules = []categoryRule{
	{CategoryBug, []string{"bug", "crash", "regression", "panic"}},
	{CategoryFeature, []string{"feature", "enhancement", "improvement"}},
	{CategoryDocs, []string{"doc", "readme", "faq", "question"}},
	{CategoryDependency, []string{"dependenc", "deps", "dependabot"}},
	{CategoryInfra, []string{"infra", "ci", "build", "release", "workflow", "tooling"}},
}

// Classify maps a raw label set to exactly one category. It is a pure,
// total function: every label set (including the empty one) resolves, with
// Other as the default when no rule matches.
func Classify(labels []string) Category {
	if len(labels) == 0 {
		return CategoryOther
	}

	lowered := make([]string, len(labels))
	for i, l := range labels {
		lowered[i] = strings.ToLower(l)
	}

	for _, rule := range categoryRules {
		for _, label := range lowered {
			for _, needle := range rule.needles {
				if strings.Contains(label, needle) {
					return rule.category
				}
			}
		}
	}
	return CategoryOther
}

// areaPrefix is the label namespace denoting a codebase region.
const areaPrefix = "area/"

// AreaLabels extracts every label in the area/ namespace, preserving
// first-seen order and deduplicating case-insensitively.
func AreaLabels(labels []string) []string {
	var areas []string
	seen := make(map[string]bool)
	for _, l := range labels {
		lower := strings.ToLower(l)
		if !strings.HasPrefix(lower, areaPrefix) {
			continue
		}
		if seen[lower] {
			continue
		}
		seen[lower] = true
		areas = append(areas, l)
	}
	return areas
}

// LabelFamily returns the label-family prefix: the substring before the
// first '/', or the whole label when it has no namespace.
func LabelFamily(label string) (family, sublabel string) {
	if idx := strings.Index(label, "/"); idx >= 0 {
		return label[:idx], label[idx+1:]
	}
	return label, ""
}
