package commands

import (
	"os"

	"github.com/spf13/cobra"

	"issuelens/internal/analytics"
	"issuelens/internal/render"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Rank issues by normalized activity score within a time window",
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := resolveWindow()
		if err != nil {
			return err
		}
		report := analytics.ScoreActivity(issues, window)
		return render.Activity(os.Stdout, report, topN)
	},
}

func init() {
	rootCmd.AddCommand(activityCmd)
}
