package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"issuelens/internal/analytics"
)

// Resolution prints the triage-speed trends and their sample counts.
func Resolution(w io.Writer, report analytics.ResolutionReport) error {
	heading(w, "Triage Speed vs Resolution Time")

	if report.ClosedIssues == 0 {
		fmt.Fprintln(w, "No closed issues with usable close timestamps.")
		return nil
	}

	table := newTable(w, []string{"First action", "Samples", "Slope (days/day)", "Intercept (days)", "Reading"})
	rows := [][]string{
		trendRow("Labeled", report.LabelTrend),
		trendRow("Assigned", report.AssignTrend),
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Closed issues considered: %d", report.ClosedIssues)
	if report.ExcludedIssues > 0 {
		fmt.Fprintf(w, " (%d excluded for missing close timestamps)", report.ExcludedIssues)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trends describe correlation in this snapshot only, not causation.")
	return nil
}

func trendRow(name string, fit analytics.LinearFit) []string {
	if !fit.Defined {
		return []string{name, strconv.Itoa(fit.Samples), "-", "-", "not enough spread to fit"}
	}
	return []string{
		name,
		strconv.Itoa(fit.Samples),
		fmt.Sprintf("%+.2f", fit.Slope),
		fmt.Sprintf("%.1f", fit.Intercept),
		trendReading(fit.Slope),
	}
}

// trendReading turns a slope into a one-line interpretation. A negative
// slope means later first actions coincided with faster closes in this
// snapshot; a positive one means the opposite.
func trendReading(slope float64) string {
	switch {
	case slope > 0:
		return color.YellowString("later action, slower close")
	case slope < 0:
		return color.GreenString("later action, faster close")
	default:
		return "flat"
	}
}
