package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"issuelens/internal/analytics"
)

// Activity prints the top-N most active issues for the report's window.
func Activity(w io.Writer, report analytics.ActivityReport, topN int) error {
	top := report.Top(topN)
	heading(w, windowHeading(fmt.Sprintf("Most Active Issues (Top %d)", len(top)), report.Window))

	if len(top) == 0 {
		fmt.Fprintln(w, "No issues in the selected window.")
		return nil
	}

	table := newTable(w, []string{"Rank", "Issue", "Title", "Labels", "Category", "State", "Score"})
	var rows [][]string
	for i, ia := range top {
		labels := "-"
		if len(ia.Labels) > 0 {
			shown := ia.Labels
			if len(shown) > 4 {
				shown = shown[:4]
			}
			labels = strings.Join(shown, ", ")
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("#%d", ia.ID),
			truncate(ia.Title, 60),
			labels,
			categoryCell(ia.Category),
			stateCell(ia.State),
			fmt.Sprintf("%.2f", ia.Score),
		})
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
