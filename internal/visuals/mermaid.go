package visuals

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"issuelens/internal/analytics"
)

// GenerateCategoryPie creates a Mermaid pie chart of issue counts per
// category. Empty categories are omitted so the chart stays readable.
func GenerateCategoryPie(report analytics.CategoryReport) string {
	if report.Total == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("pie title Issues by Category\n")
	for _, c := range analytics.CategoryOrder {
		count := report.CountByCategory[c]
		if count == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("    \"%s\" : %d\n", c, count))
	}
	sb.WriteString("```")
	return sb.String()
}

// GenerateCategoryStateChart creates a Mermaid bar chart of open counts per
// category, with closed counts as a second series.
func GenerateCategoryStateChart(report analytics.CategoryReport) string {
	if report.Total == 0 {
		return ""
	}

	var labels []string
	var open []string
	var closed []string
	maxVal := 0

	for _, c := range analytics.CategoryOrder {
		sc := report.StateByCategory[c]
		labels = append(labels, fmt.Sprintf("\"%s\"", c))
		open = append(open, fmt.Sprintf("%d", sc.Open))
		closed = append(closed, fmt.Sprintf("%d", sc.Closed))
		if sc.Open > maxVal {
			maxVal = sc.Open
		}
		if sc.Closed > maxVal {
			maxVal = sc.Closed
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Open vs Closed by Category\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Issues\" 0 --> %d\n", maxVal+int(math.Max(1, float64(maxVal)*0.2))))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(open, ", ")))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(closed, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateImpactStatePie creates a Mermaid pie chart of the open/closed
// split across multi-area issues.
func GenerateImpactStatePie(report analytics.ImpactReport) string {
	if report.StateSplit.Open == 0 && report.StateSplit.Closed == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("pie title Multi-Area Issues by State\n")
	if report.StateSplit.Open > 0 {
		sb.WriteString(fmt.Sprintf("    \"Open\" : %d\n", report.StateSplit.Open))
	}
	if report.StateSplit.Closed > 0 {
		sb.WriteString(fmt.Sprintf("    \"Closed\" : %d\n", report.StateSplit.Closed))
	}
	sb.WriteString("```")
	return sb.String()
}

// GenerateAreaFrequencyChart creates a Mermaid bar chart of how often each
// area appears in multi-area issues, most frequent first.
func GenerateAreaFrequencyChart(report analytics.ImpactReport) string {
	if len(report.AreaFrequency) == 0 {
		return ""
	}

	areas := make([]string, 0, len(report.AreaFrequency))
	for area := range report.AreaFrequency {
		areas = append(areas, area)
	}
	sort.Slice(areas, func(i, j int) bool {
		fi, fj := report.AreaFrequency[areas[i]], report.AreaFrequency[areas[j]]
		if fi != fj {
			return fi > fj
		}
		return areas[i] < areas[j]
	})

	// Limit to 20 areas to avoid overwhelming the text chart context
	if len(areas) > 20 {
		areas = areas[:20]
	}

	var labels []string
	var values []string
	maxVal := 0
	for _, area := range areas {
		// Replace slashes to help mermaid rendering
		safeName := strings.ReplaceAll(area, "/", "_")
		labels = append(labels, fmt.Sprintf("\"%s\"", safeName))
		values = append(values, fmt.Sprintf("%d", report.AreaFrequency[area]))
		if report.AreaFrequency[area] > maxVal {
			maxVal = report.AreaFrequency[area]
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Area Frequency (Multi-Area Issues)\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Issues\" 0 --> %d\n", maxVal+int(math.Max(1, float64(maxVal)*0.2))))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateImpactTimeline creates a Mermaid line chart of multi-area issue
// creation per month.
func GenerateImpactTimeline(timeline []analytics.TimelineBucket) string {
	if len(timeline) == 0 {
		return ""
	}

	// Subsample points if the chart is too wide for Mermaid's layout engine
	// Typically Mermaid xychart starts overflowing/overlapping text around 60 points
	subsampleRate := 1
	if len(timeline) > 60 {
		subsampleRate = int(math.Ceil(float64(len(timeline)) / 60.0))
	}

	var labels []string
	var values []string
	maxVal := 0
	for i, bucket := range timeline {
		if i%subsampleRate == 0 || i == len(timeline)-1 {
			labels = append(labels, fmt.Sprintf("\"%s\"", bucket.Period))
			values = append(values, fmt.Sprintf("%d", bucket.Count))
		}
		if bucket.Count > maxVal {
			maxVal = bucket.Count
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Multi-Area Issues Created per Month\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Issues\" 0 --> %d\n", maxVal+int(math.Max(1, float64(maxVal)*0.2))))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateTrendChart creates a Mermaid line chart of a resolution-time
// sample series alongside its fitted trend line, sorted by days-to-event.
func GenerateTrendChart(title string, samples []analytics.ResolutionSample, fit analytics.LinearFit) string {
	if len(samples) == 0 {
		return ""
	}

	sorted := make([]analytics.ResolutionSample, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].DaysToEvent < sorted[j].DaysToEvent
	})

	subsampleRate := 1
	if len(sorted) > 60 {
		subsampleRate = int(math.Ceil(float64(len(sorted)) / 60.0))
	}

	var labels []string
	var values []string
	var fitted []string
	maxY := 0.0
	for i, s := range sorted {
		if s.DaysToClose > maxY {
			maxY = s.DaysToClose
		}
		if i%subsampleRate != 0 && i != len(sorted)-1 {
			continue
		}
		labels = append(labels, fmt.Sprintf("\"%.1f\"", s.DaysToEvent))
		values = append(values, fmt.Sprintf("%.1f", s.DaysToClose))
		if fit.Defined {
			y := fit.Intercept + fit.Slope*s.DaysToEvent
			if y < 0 {
				y = 0
			}
			fitted = append(fitted, fmt.Sprintf("%.1f", y))
			if y > maxY {
				maxY = y
			}
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString(fmt.Sprintf("    title \"%s\"\n", title))
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Days to Close\" 0 --> %d\n", int(math.Ceil(maxY*1.2))+1))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(values, ", ")))
	if fit.Defined {
		sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(fitted, ", ")))
	}
	sb.WriteString("```")
	return sb.String()
}
