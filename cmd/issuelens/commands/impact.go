package commands

import (
	"os"

	"github.com/spf13/cobra"

	"issuelens/internal/analytics"
	"issuelens/internal/render"
)

var impactCmd = &cobra.Command{
	Use:   "impact",
	Short: "Rank issues spanning two or more codebase areas",
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := resolveWindow()
		if err != nil {
			return err
		}
		report := analytics.AnalyzeImpact(issues, window)
		return render.Impact(os.Stdout, report, topN)
	},
}

func init() {
	rootCmd.AddCommand(impactCmd)
}
