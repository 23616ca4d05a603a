package commands

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"issuelens/internal/analytics"
	"issuelens/internal/config"
	"issuelens/internal/logging"
	"issuelens/internal/tracker"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose   bool
	dataPath  string
	window    string
	year      int
	startYear int
	endYear   int
	topN      int

	cfg    *config.AppConfig
	issues []tracker.Issue
	diags  tracker.Diagnostics
)

var rootCmd = &cobra.Command{
	Use:   "issuelens",
	Short: "Issuelens analyzes a static JSON export of issue-tracking data",
	Long: `Issuelens reads a JSON snapshot of issues and their event histories and
computes activity rankings, category shares, cross-area impact, contributor
rankings and resolution-time trends. It never talks to a live tracker.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if dataPath == "" {
			dataPath = cfg.DataPath
		}
		if topN <= 0 {
			topN = cfg.TopN
		}
		if window == "" {
			window = cfg.Window
		}

		issues, diags, err = tracker.Load(dataPath)
		if err != nil {
			return err
		}

		log.Info().
			Str("version", Version).
			Str("data", dataPath).
			Int("issues", len(issues)).
			Int("malformed", diags.MalformedRecords).
			Msg("Snapshot loaded")
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// resolveWindow turns the temporal flags into a concrete window. Year flags
// take precedence over the named preset.
func resolveWindow() (analytics.Window, error) {
	if year != 0 {
		return analytics.YearWindow(year, year), nil
	}
	if startYear != 0 || endYear != 0 {
		if startYear == 0 {
			startYear = endYear
		}
		return analytics.YearWindow(startYear, endYear), nil
	}
	return analytics.ResolveWindow(window, time.Now())
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVarP(&dataPath, "data", "d", "", "path to the JSON issue export (default $ISSUES_DATA_PATH)")
	pf.StringVarP(&window, "window", "w", "", "time window preset: last-3-months, last-6-months, last-12-months, last-18-months, last-24-months, all-time")
	pf.IntVar(&year, "year", 0, "restrict to issues created in a single year")
	pf.IntVar(&startYear, "start-year", 0, "first creation year to include")
	pf.IntVar(&endYear, "end-year", 0, "last creation year to include")
	pf.IntVarP(&topN, "top", "n", 0, "number of entries in ranked output (default $TOP_N or 10)")
}
