package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"issuelens/internal/analytics"
)

// Impact prints the multi-area issue ranking, the per-area frequency table
// and the impacted-issue creation timeline.
func Impact(w io.Writer, report analytics.ImpactReport, topN int) error {
	heading(w, windowHeading("Cross-Area Impact", report.Window))

	if len(report.Ranked) == 0 {
		fmt.Fprintln(w, "No issues touch two or more areas in this window.")
		return nil
	}

	ranked := report.Ranked
	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}

	table := newTable(w, []string{"Rank", "Issue", "Title", "Areas", "#", "State"})
	var rows [][]string
	for i, issue := range ranked {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("#%d", issue.ID),
			truncate(issue.Title, 48),
			strings.Join(issue.Areas, ", "),
			strconv.Itoa(issue.AreaCount),
			stateCell(issue.State),
		})
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Multi-area issues: %d (%d open, %d closed), %d distinct areas, avg %.1f areas/issue, widest %d\n",
		len(report.Ranked), report.StateSplit.Open, report.StateSplit.Closed,
		report.Summary.TotalAreas, report.Summary.AvgAreasPerImpactedIssue, report.Summary.MaxAreaCount)

	if err := areaFrequency(w, report.AreaFrequency); err != nil {
		return err
	}
	return impactTimeline(w, report.Timeline)
}

func areaFrequency(w io.Writer, freq map[string]int) error {
	if len(freq) == 0 {
		return nil
	}
	heading(w, "Area frequency among multi-area issues")

	areas := make([]string, 0, len(freq))
	for area := range freq {
		areas = append(areas, area)
	}
	sort.Slice(areas, func(i, j int) bool {
		if freq[areas[i]] != freq[areas[j]] {
			return freq[areas[i]] > freq[areas[j]]
		}
		return areas[i] < areas[j]
	})

	table := newTable(w, []string{"Area", "Issues"})
	var rows [][]string
	for _, area := range areas {
		rows = append(rows, []string{area, strconv.Itoa(freq[area])})
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func impactTimeline(w io.Writer, timeline []analytics.TimelineBucket) error {
	if len(timeline) == 0 {
		return nil
	}
	heading(w, "Multi-area issues created per month")

	table := newTable(w, []string{"Month", "Issues"})
	var rows [][]string
	for _, bucket := range timeline {
		rows = append(rows, []string{bucket.Period, strconv.Itoa(bucket.Count)})
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
