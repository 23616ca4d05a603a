package render

import (
	"fmt"
	"io"
	"strconv"

	"issuelens/internal/analytics"
)

// Contributors prints the top contributors ranked by combined activity.
func Contributors(w io.Writer, report analytics.ContributorReport, topN int) error {
	heading(w, "Top Contributors")

	if len(report.Ranked) == 0 {
		fmt.Fprintln(w, "No attributed activity found.")
		return nil
	}

	ranked := report.Ranked
	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}

	table := newTable(w, []string{"Rank", "User", "Created", "Closed", "Comments", "Total"})
	var rows [][]string
	for i, c := range ranked {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			c.User,
			strconv.Itoa(c.Created),
			strconv.Itoa(c.Closed),
			strconv.Itoa(c.Comments),
			strconv.Itoa(c.Total),
		})
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
