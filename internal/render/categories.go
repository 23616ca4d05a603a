package render

import (
	"fmt"
	"io"
	"strconv"

	"issuelens/internal/analytics"
)

// Categories prints the category share, the open/closed distribution and
// the Other-bucket refinement diagnostics.
func Categories(w io.Writer, report analytics.CategoryReport) error {
	heading(w, windowHeading("Category Share (% of issues)", report.Window))

	table := newTable(w, []string{"Category", "Count", "Share", "Open", "Closed"})
	var rows [][]string
	for _, c := range analytics.CategoryOrder {
		sc := report.StateByCategory[c]
		rows = append(rows, []string{
			categoryCell(c),
			strconv.Itoa(report.CountByCategory[c]),
			fmt.Sprintf("%.1f%%", report.ShareByCategory[c]),
			strconv.Itoa(sc.Open),
			strconv.Itoa(sc.Closed),
		})
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Total issues: %d\n", report.Total)

	return otherBreakdown(w, report)
}

// otherBreakdown surfaces what hides inside the Other bucket so the
// classifier rule table can be refined.
func otherBreakdown(w io.Writer, report analytics.CategoryReport) error {
	if len(report.OtherLabels) == 0 {
		fmt.Fprintln(w, "No raw labels inside 'Other' to break down.")
		return nil
	}

	heading(w, "Top labels found in 'Other'")
	labelTable := newTable(w, []string{"Label", "Issues"})
	var rows [][]string
	for _, lc := range report.OtherLabels {
		rows = append(rows, []string{lc.Label, strconv.Itoa(lc.Issues)})
	}
	if err := labelTable.Bulk(rows); err != nil {
		return err
	}
	if err := labelTable.Render(); err != nil {
		return err
	}

	heading(w, "Top label families in 'Other'")
	familyTable := newTable(w, []string{"Family", "Issues", "Common sublabels"})
	rows = rows[:0]
	for _, fc := range report.OtherFamilies {
		common := "-"
		if len(fc.CommonSublabels) > 0 {
			common = ""
			for i, sl := range fc.CommonSublabels {
				if i > 0 {
					common += ", "
				}
				common += fmt.Sprintf("%s (%d)", sl.Label, sl.Issues)
			}
		}
		rows = append(rows, []string{fc.Family, strconv.Itoa(fc.Issues), common})
	}
	if err := familyTable.Bulk(rows); err != nil {
		return err
	}
	return familyTable.Render()
}
