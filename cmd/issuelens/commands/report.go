package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"issuelens/internal/analytics"
	"issuelens/internal/visuals"
)

var (
	reportOut  string
	reportOpen bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a full Markdown report combining all analyses",
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := resolveWindow()
		if err != nil {
			return err
		}

		var (
			activity     analytics.ActivityReport
			categories   analytics.CategoryReport
			impact       analytics.ImpactReport
			contributors analytics.ContributorReport
			resolution   analytics.ResolutionReport
		)

		g, _ := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			activity = analytics.ScoreActivity(issues, window)
			return nil
		})
		g.Go(func() error {
			categories = analytics.AggregateCategories(issues, window, analytics.Filters{}, topN)
			return nil
		})
		g.Go(func() error {
			impact = analytics.AnalyzeImpact(issues, window)
			return nil
		})
		g.Go(func() error {
			contributors = analytics.RankContributors(issues)
			return nil
		})
		g.Go(func() error {
			resolution = analytics.AnalyzeResolution(issues)
			return nil
		})
		if err := g.Wait(); err != nil {
			return err
		}

		md := buildReport(window, activity, categories, impact, contributors, resolution)
		if err := os.WriteFile(reportOut, []byte(md), 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		log.Info().Str("path", reportOut).Msg("Report written")

		if reportOpen {
			if err := browser.OpenFile(reportOut); err != nil {
				log.Warn().Err(err).Msg("Failed to open report in browser")
			}
		}
		return nil
	},
}

func buildReport(
	window analytics.Window,
	activity analytics.ActivityReport,
	categories analytics.CategoryReport,
	impact analytics.ImpactReport,
	contributors analytics.ContributorReport,
	resolution analytics.ResolutionReport,
) string {
	var sb strings.Builder

	sb.WriteString("# Issue Tracker Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02 15:04")))
	if window.Label != "" {
		sb.WriteString(fmt.Sprintf(", window: %s", window.Label))
	}
	sb.WriteString(fmt.Sprintf(", %d issues", len(issues)))
	if diags.MalformedRecords > 0 || diags.DroppedEvents > 0 || diags.ClosedWithoutTimestamp > 0 {
		sb.WriteString(fmt.Sprintf(" (%d malformed records skipped, %d events dropped, %d closed without timestamp)",
			diags.MalformedRecords, diags.DroppedEvents, diags.ClosedWithoutTimestamp))
	}
	sb.WriteString("\n\n")

	sb.WriteString("## Most Active Issues\n\n")
	top := activity.Top(topN)
	if len(top) == 0 {
		sb.WriteString("No issues in this window.\n\n")
	} else {
		sb.WriteString("| Rank | Issue | Title | Category | State | Score |\n")
		sb.WriteString("|---:|---|---|---|---|---:|\n")
		for i, issue := range top {
			sb.WriteString(fmt.Sprintf("| %d | #%d | %s | %s | %s | %.2f |\n",
				i+1, issue.ID, issue.Title, issue.Category, issue.State, issue.Score))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Category Share\n\n")
	sb.WriteString("| Category | Count | Share | Open | Closed |\n")
	sb.WriteString("|---|---:|---:|---:|---:|\n")
	for _, c := range analytics.CategoryOrder {
		sc := categories.StateByCategory[c]
		sb.WriteString(fmt.Sprintf("| %s | %d | %.1f%% | %d | %d |\n",
			c, categories.CountByCategory[c], categories.ShareByCategory[c], sc.Open, sc.Closed))
	}
	sb.WriteString("\n")
	if cfg.EnableMermaidCharts {
		if pie := visuals.GenerateCategoryPie(categories); pie != "" {
			sb.WriteString(pie + "\n\n")
		}
		if chart := visuals.GenerateCategoryStateChart(categories); chart != "" {
			sb.WriteString(chart + "\n\n")
		}
	}

	sb.WriteString("## Cross-Area Impact\n\n")
	if len(impact.Ranked) == 0 {
		sb.WriteString("No issues touch two or more areas in this window.\n\n")
	} else {
		ranked := impact.Ranked
		if len(ranked) > topN {
			ranked = ranked[:topN]
		}
		sb.WriteString("| Rank | Issue | Title | Areas | State |\n")
		sb.WriteString("|---:|---|---|---|---|\n")
		for i, issue := range ranked {
			sb.WriteString(fmt.Sprintf("| %d | #%d | %s | %s | %s |\n",
				i+1, issue.ID, issue.Title, strings.Join(issue.Areas, ", "), issue.State))
		}
		sb.WriteString(fmt.Sprintf("\n%d multi-area issues over %d distinct areas, avg %.1f areas/issue.\n\n",
			len(impact.Ranked), impact.Summary.TotalAreas, impact.Summary.AvgAreasPerImpactedIssue))
		if cfg.EnableMermaidCharts {
			if pie := visuals.GenerateImpactStatePie(impact); pie != "" {
				sb.WriteString(pie + "\n\n")
			}
			if chart := visuals.GenerateAreaFrequencyChart(impact); chart != "" {
				sb.WriteString(chart + "\n\n")
			}
			if chart := visuals.GenerateImpactTimeline(impact.Timeline); chart != "" {
				sb.WriteString(chart + "\n\n")
			}
		}
	}

	sb.WriteString("## Top Contributors\n\n")
	rankedContribs := contributors.Ranked
	if len(rankedContribs) > topN {
		rankedContribs = rankedContribs[:topN]
	}
	if len(rankedContribs) == 0 {
		sb.WriteString("No attributed activity found.\n\n")
	} else {
		sb.WriteString("| Rank | User | Created | Closed | Comments | Total |\n")
		sb.WriteString("|---:|---|---:|---:|---:|---:|\n")
		for i, c := range rankedContribs {
			sb.WriteString(fmt.Sprintf("| %d | %s | %d | %d | %d | %d |\n",
				i+1, c.User, c.Created, c.Closed, c.Comments, c.Total))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Triage Speed vs Resolution Time\n\n")
	if resolution.ClosedIssues == 0 {
		sb.WriteString("No closed issues with usable close timestamps.\n")
	} else {
		sb.WriteString("| First action | Samples | Slope (days/day) | Intercept (days) |\n")
		sb.WriteString("|---|---:|---:|---:|\n")
		sb.WriteString(trendLine("Labeled", resolution.LabelTrend))
		sb.WriteString(trendLine("Assigned", resolution.AssignTrend))
		sb.WriteString(fmt.Sprintf("\nClosed issues considered: %d", resolution.ClosedIssues))
		if resolution.ExcludedIssues > 0 {
			sb.WriteString(fmt.Sprintf(" (%d excluded for missing close timestamps)", resolution.ExcludedIssues))
		}
		sb.WriteString("\n\nTrends describe correlation in this snapshot only, not causation.\n\n")
		if cfg.EnableMermaidCharts {
			if chart := visuals.GenerateTrendChart("Days to First Label vs Days to Close", resolution.LabelSamples, resolution.LabelTrend); chart != "" {
				sb.WriteString(chart + "\n\n")
			}
			if chart := visuals.GenerateTrendChart("Days to First Assignment vs Days to Close", resolution.AssignSamples, resolution.AssignTrend); chart != "" {
				sb.WriteString(chart + "\n")
			}
		}
	}

	return sb.String()
}

func trendLine(name string, fit analytics.LinearFit) string {
	if !fit.Defined {
		return fmt.Sprintf("| %s | %d | - | - |\n", name, fit.Samples)
	}
	return fmt.Sprintf("| %s | %d | %+.2f | %.1f |\n", name, fit.Samples, fit.Slope, fit.Intercept)
}

func init() {
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "issuelens-report.md", "output path for the Markdown report")
	reportCmd.Flags().BoolVar(&reportOpen, "open", false, "open the report in the default browser after writing")
	rootCmd.AddCommand(reportCmd)
}
