// Package mcp exposes the analytics suite as Model Context Protocol tools
// over stdio, so agents can interrogate an issue snapshot conversationally.
package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"

	"issuelens/internal/tracker"
)

// Server wraps an MCP server around a loaded issue snapshot. The snapshot is
// immutable for the lifetime of the server; every tool call recomputes its
// view from it.
type Server struct {
	issues []tracker.Issue
	diags  tracker.Diagnostics
}

// NewServer creates an MCP server over the given snapshot.
func NewServer(issues []tracker.Issue, diags tracker.Diagnostics) *Server {
	return &Server{issues: issues, diags: diags}
}

// Serve registers the tool set and runs the stdio transport until the client
// disconnects or the context is cancelled.
func (s *Server) Serve(ctx context.Context, version string) error {
	server := sdk.NewServer(&sdk.Implementation{
		Name:    "issuelens",
		Version: version,
	}, nil)

	sdk.AddTool(server, &sdk.Tool{
		Name:        "rank_issue_activity",
		Description: "Rank issues by normalized activity score within a time window. Each tracked event type contributes count/max_count, so the score reflects relative engagement across the snapshot.",
	}, s.handleActivity)

	sdk.AddTool(server, &sdk.Tool{
		Name:        "aggregate_categories",
		Description: "Group issues created in a time window into six label-derived categories (Bug, Feature, Docs, Dependency, Infra, Other) with counts, percentage shares and open/closed splits. Supports year, category and label filters.",
	}, s.handleCategories)

	sdk.AddTool(server, &sdk.Tool{
		Name:        "analyze_cross_area_impact",
		Description: "Identify issues touching two or more area/ labels, ranked by breadth, with per-area frequency, state split and a monthly creation timeline.",
	}, s.handleImpact)

	sdk.AddTool(server, &sdk.Tool{
		Name:        "rank_contributors",
		Description: "Rank contributors by combined created, closed and commented activity across the whole snapshot.",
	}, s.handleContributors)

	sdk.AddTool(server, &sdk.Tool{
		Name:        "analyze_resolution_trends",
		Description: "Correlate days to first label and first assignment with days to close for closed issues, fitting a least-squares trend to each series. Results describe correlation in this snapshot, not causation.",
	}, s.handleResolution)

	sdk.AddTool(server, &sdk.Tool{
		Name:        "get_snapshot_diagnostics",
		Description: "Report the loaded snapshot's size and ingestion diagnostics: malformed records, dropped events and closed issues missing close timestamps.",
	}, s.handleDiagnostics)

	log.Info().Int("issues", len(s.issues)).Msg("MCP server ready on stdio")
	return server.Run(ctx, &sdk.StdioTransport{})
}
