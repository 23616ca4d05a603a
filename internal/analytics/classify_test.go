package analytics

import (
	"slices"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		labels   []string
		expected Category
	}{
		{"Empty", nil, CategoryOther},
		{"PlainBug", []string{"bug"}, CategoryBug},
		{"NamespacedBug", []string{"kind/bug"}, CategoryBug},
		{"Crash", []string{"crash"}, CategoryBug},
		{"Enhancement", []string{"enhancement"}, CategoryFeature},
		{"FeatureRequest", []string{"kind/feature"}, CategoryFeature},
		{"Docs", []string{"area/docs"}, CategoryDocs},
		{"Documentation", []string{"documentation"}, CategoryDocs},
		{"Dependency", []string{"dependencies"}, CategoryDependency},
		{"Dependabot", []string{"dependabot"}, CategoryDependency},
		{"Infra", []string{"area/ci"}, CategoryInfra},
		{"Build", []string{"build"}, CategoryInfra},
		{"StatusLabel", []string{"status/triage"}, CategoryOther},
		{"CaseInsensitive", []string{"Kind/Bug"}, CategoryBug},
		// Rule order is a total order: Bug beats Feature when both match.
		{"BugBeatsFeature", []string{"enhancement", "bug"}, CategoryBug},
		// "dependencies" contains the substring "ci"; the Dependency rule
		// must win because it precedes Infra.
		{"DependencyBeatsInfra", []string{"dependencies"}, CategoryDependency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.labels)
			if got != tt.expected {
				t.Errorf("Classify(%v) = %v, want %v", tt.labels, got, tt.expected)
			}
			// Determinism: repeated calls agree.
			if again := Classify(tt.labels); again != got {
				t.Errorf("Classify(%v) not deterministic: %v then %v", tt.labels, got, again)
			}
		})
	}
}

func TestClassifyTotality(t *testing.T) {
	inputs := [][]string{
		nil,
		{},
		{""},
		{"completely-unknown-label"},
		{"a", "b", "c"},
		{"AREA/CLI", "needs-review"},
	}
	for _, labels := range inputs {
		got := Classify(labels)
		if !slices.Contains(CategoryOrder, got) {
			t.Errorf("Classify(%v) = %q, not one of the six categories", labels, got)
		}
	}
}

func TestAreaLabels(t *testing.T) {
	tests := []struct {
		name     string
		labels   []string
		expected []string
	}{
		{"Empty", nil, nil},
		{"NoAreas", []string{"bug", "kind/feature"}, nil},
		{"SingleArea", []string{"area/cli"}, []string{"area/cli"}},
		{"PreservesOrder", []string{"area/docs", "bug", "area/cli"}, []string{"area/docs", "area/cli"}},
		{"Deduplicates", []string{"area/cli", "area/cli"}, []string{"area/cli"}},
		{"DedupCaseInsensitive", []string{"area/cli", "Area/CLI"}, []string{"area/cli"}},
		{"CaseInsensitivePrefix", []string{"Area/Core"}, []string{"Area/Core"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AreaLabels(tt.labels)
			if !slices.Equal(got, tt.expected) {
				t.Errorf("AreaLabels(%v) = %v, want %v", tt.labels, got, tt.expected)
			}
		})
	}
}

func TestLabelFamily(t *testing.T) {
	tests := []struct {
		label    string
		family   string
		sublabel string
	}{
		{"area/cli", "area", "cli"},
		{"kind/bug", "kind", "bug"},
		{"plain", "plain", ""},
		{"a/b/c", "a", "b/c"},
	}

	for _, tt := range tests {
		family, sublabel := LabelFamily(tt.label)
		if family != tt.family || sublabel != tt.sublabel {
			t.Errorf("LabelFamily(%q) = (%q, %q), want (%q, %q)",
				tt.label, family, sublabel, tt.family, tt.sublabel)
		}
	}
}
