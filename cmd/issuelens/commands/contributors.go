package commands

import (
	"os"

	"github.com/spf13/cobra"

	"issuelens/internal/analytics"
	"issuelens/internal/render"
)

var contributorsCmd = &cobra.Command{
	Use:   "contributors",
	Short: "Rank contributors by created, closed and commented activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		report := analytics.RankContributors(issues)
		return render.Contributors(os.Stdout, report, topN)
	},
}

func init() {
	rootCmd.AddCommand(contributorsCmd)
}
