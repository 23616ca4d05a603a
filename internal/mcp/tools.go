package mcp

import (
	"context"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"issuelens/internal/analytics"
	"issuelens/internal/tracker"
)

// windowArgs is the shared temporal scope of the windowed tools. Preset and
// year bounds are mutually exclusive; years win when both are set.
type windowArgs struct {
	Window    string `json:"window,omitempty" jsonschema:"named window preset such as last-6-months or all-time (the default)"`
	StartYear int    `json:"startYear,omitempty" jsonschema:"first creation year to include; overrides the window preset"`
	EndYear   int    `json:"endYear,omitempty" jsonschema:"last creation year to include; defaults to startYear"`
}

func (a windowArgs) resolve(now time.Time) (analytics.Window, error) {
	if a.StartYear != 0 || a.EndYear != 0 {
		start := a.StartYear
		if start == 0 {
			start = a.EndYear
		}
		return analytics.YearWindow(start, a.EndYear), nil
	}
	if a.Window == "" {
		return analytics.Window{Label: "all time"}, nil
	}
	return analytics.ResolveWindow(a.Window, now)
}

type activityArgs struct {
	windowArgs
	Top int `json:"top,omitempty" jsonschema:"number of issues to return; defaults to 10"`
}

type activityResult struct {
	Window analytics.Window          `json:"window"`
	Issues []analytics.IssueActivity `json:"issues"`
}

func (s *Server) handleActivity(ctx context.Context, req *sdk.CallToolRequest, args activityArgs) (*sdk.CallToolResult, activityResult, error) {
	window, err := args.resolve(time.Now())
	if err != nil {
		return nil, activityResult{}, err
	}
	report := analytics.ScoreActivity(s.issues, window)
	top := args.Top
	if top <= 0 {
		top = 10
	}
	return nil, activityResult{Window: report.Window, Issues: report.Top(top)}, nil
}

type categoriesArgs struct {
	windowArgs
	Categories []string `json:"categories,omitempty" jsonschema:"allow-list of categories to keep (Bug Feature Docs Dependency Infra Other)"`
	Labels     []string `json:"labels,omitempty" jsonschema:"case-insensitive raw-label substrings; any match keeps the issue"`
	Top        int      `json:"top,omitempty" jsonschema:"size of the Other-bucket breakdown lists; defaults to 10"`
}

func (s *Server) handleCategories(ctx context.Context, req *sdk.CallToolRequest, args categoriesArgs) (*sdk.CallToolResult, analytics.CategoryReport, error) {
	window, err := args.resolve(time.Now())
	if err != nil {
		return nil, analytics.CategoryReport{}, err
	}
	filters := analytics.Filters{LabelNeedles: args.Labels}
	for _, c := range args.Categories {
		filters.Categories = append(filters.Categories, analytics.Category(c))
	}
	report := analytics.AggregateCategories(s.issues, window, filters, args.Top)
	return nil, report, nil
}

type impactArgs struct {
	windowArgs
	Top int `json:"top,omitempty" jsonschema:"number of ranked issues to return; defaults to 10"`
}

func (s *Server) handleImpact(ctx context.Context, req *sdk.CallToolRequest, args impactArgs) (*sdk.CallToolResult, analytics.ImpactReport, error) {
	window, err := args.resolve(time.Now())
	if err != nil {
		return nil, analytics.ImpactReport{}, err
	}
	report := analytics.AnalyzeImpact(s.issues, window)
	top := args.Top
	if top <= 0 {
		top = 10
	}
	if len(report.Ranked) > top {
		report.Ranked = report.Ranked[:top]
	}
	return nil, report, nil
}

type contributorsArgs struct {
	Top int `json:"top,omitempty" jsonschema:"number of contributors to return; defaults to 10"`
}

func (s *Server) handleContributors(ctx context.Context, req *sdk.CallToolRequest, args contributorsArgs) (*sdk.CallToolResult, analytics.ContributorReport, error) {
	report := analytics.RankContributors(s.issues)
	top := args.Top
	if top <= 0 {
		top = 10
	}
	if len(report.Ranked) > top {
		report.Ranked = report.Ranked[:top]
	}
	return nil, report, nil
}

type resolutionArgs struct{}

func (s *Server) handleResolution(ctx context.Context, req *sdk.CallToolRequest, args resolutionArgs) (*sdk.CallToolResult, analytics.ResolutionReport, error) {
	return nil, analytics.AnalyzeResolution(s.issues), nil
}

type diagnosticsArgs struct{}

type diagnosticsResult struct {
	Issues      int                 `json:"issues"`
	Diagnostics tracker.Diagnostics `json:"diagnostics"`
}

func (s *Server) handleDiagnostics(ctx context.Context, req *sdk.CallToolRequest, args diagnosticsArgs) (*sdk.CallToolResult, diagnosticsResult, error) {
	return nil, diagnosticsResult{Issues: len(s.issues), Diagnostics: s.diags}, nil
}
