package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"issuelens/cmd/mockgen/engine"
)

func main() {
	scenario := flag.String("scenario", "mild", "Scenario to generate: mild, chaos, drift")
	out := flag.String("out", "./issues.json", "Output path for the mock export")
	count := flag.Int("count", 200, "Number of issues to generate")
	seed := flag.Int64("seed", 0, "Random seed (0 derives one from the clock)")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		Scenario: *scenario,
		Count:    *count,
		Seed:     *seed,
		Now:      time.Now(),
	}

	fmt.Printf("Generating scenario '%s' (Count: %d) to %s...\n", cfg.Scenario, cfg.Count, *out)

	records := engine.Generate(cfg)
	if err := engine.Save(*out, records); err != nil {
		fmt.Printf("Failed to save mock data: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
}
