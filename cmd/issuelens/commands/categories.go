package commands

import (
	"os"

	"github.com/spf13/cobra"

	"issuelens/internal/analytics"
	"issuelens/internal/render"
)

var (
	categoryTypes  []string
	categoryLabels []string
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Group issues into label-derived categories with shares and state splits",
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := resolveWindow()
		if err != nil {
			return err
		}
		filters := analytics.Filters{LabelNeedles: categoryLabels}
		for _, t := range categoryTypes {
			filters.Categories = append(filters.Categories, analytics.Category(t))
		}
		report := analytics.AggregateCategories(issues, window, filters, topN)
		return render.Categories(os.Stdout, report)
	},
}

func init() {
	categoriesCmd.Flags().StringSliceVarP(&categoryTypes, "type", "t", nil, "keep only these categories (Bug, Feature, Docs, Dependency, Infra, Other)")
	categoriesCmd.Flags().StringSliceVarP(&categoryLabels, "labels", "l", nil, "keep issues whose labels contain any of these substrings")
	rootCmd.AddCommand(categoriesCmd)
}
