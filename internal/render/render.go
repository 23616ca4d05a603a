// Package render turns analysis reports into human-readable terminal
// tables. It consumes only the plain result structures exposed by the
// analytics package and never reaches back into core state.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"issuelens/internal/analytics"
	"issuelens/internal/tracker"
)

var (
	openColor   = color.New(color.FgYellow)
	closedColor = color.New(color.FgGreen)

	categoryColors = map[analytics.Category]*color.Color{
		analytics.CategoryBug:        color.New(color.FgRed, color.Bold),
		analytics.CategoryFeature:    color.New(color.FgGreen),
		analytics.CategoryDocs:       color.New(color.FgMagenta),
		analytics.CategoryDependency: color.New(color.FgBlue),
		analytics.CategoryInfra:      color.New(color.FgYellow),
		analytics.CategoryOther:      color.New(color.FgHiBlack),
	}
)

func newTable(w io.Writer, headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	return table
}

func stateCell(state tracker.State) string {
	if state == tracker.StateClosed {
		return closedColor.Sprint("closed")
	}
	return openColor.Sprint("open")
}

func categoryCell(c analytics.Category) string {
	if cc, ok := categoryColors[c]; ok {
		return cc.Sprint(string(c))
	}
	return string(c)
}

// truncate shortens s to width runes. Slicing on runes keeps multibyte
// titles valid UTF-8.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

func windowHeading(title string, w analytics.Window) string {
	label := w.Label
	if label == "" {
		if w.IsAllTime() {
			label = "all time"
		} else {
			label = fmt.Sprintf("%s to %s", w.Start.Format("2006-01-02"), w.End.Format("2006-01-02"))
		}
	}
	return fmt.Sprintf("%s (%s)", title, label)
}

func heading(w io.Writer, text string) {
	fmt.Fprintf(w, "\n%s\n%s\n", text, strings.Repeat("-", len([]rune(text))))
}
