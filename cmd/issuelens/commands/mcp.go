package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"issuelens/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the analyses as MCP tools over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Info().Msg("MCP server starting stdio loop")
		server := mcp.NewServer(issues, diags)
		return server.Serve(cmd.Context(), Version)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
