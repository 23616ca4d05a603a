package commands

import (
	"os"

	"github.com/spf13/cobra"

	"issuelens/internal/analytics"
	"issuelens/internal/render"
)

var resolutionCmd = &cobra.Command{
	Use:   "resolution",
	Short: "Correlate early triage actions with resolution time",
	RunE: func(cmd *cobra.Command, args []string) error {
		report := analytics.AnalyzeResolution(issues)
		return render.Resolution(os.Stdout, report)
	},
}

func init() {
	rootCmd.AddCommand(resolutionCmd)
}
