// Package engine generates synthetic issue exports in the JSON shape the
// loader consumes, for local testing of the analyses without real data.
package engine

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"
)

type GeneratorConfig struct {
	Scenario string
	Count    int
	Seed     int64
	Now      time.Time
}

// record mirrors the export wire shape, including the event array the
// analyses draw on. Timestamps are RFC 3339.
type record struct {
	Number    int           `json:"number"`
	Title     string        `json:"title"`
	State     string        `json:"state"`
	Creator   string        `json:"creator"`
	Labels    []string      `json:"labels"`
	CreatedAt string        `json:"created_at"`
	ClosedAt  string        `json:"closed_at,omitempty"`
	Events    []recordEvent `json:"events"`
}

type recordEvent struct {
	EventType string `json:"event_type"`
	Actor     string `json:"actor,omitempty"`
	Label     string `json:"label,omitempty"`
	EventDate string `json:"event_date"`
}

var (
	users = []string{"alice", "bob", "carol", "dave", "erin", "frank"}

	labelPool = [][]string{
		{"bug", "area/core"},
		{"bug", "crash", "area/cli", "area/core"},
		{"feature", "area/api"},
		{"enhancement"},
		{"documentation", "good first issue"},
		{"dependencies"},
		{"ci", "area/build", "area/release"},
		{"question"},
		{"help wanted", "triage/needs-info"},
	}
)

// Generate produces count synthetic issues spread over the two years before
// cfg.Now. Scenarios shape closure behavior: mild closes most issues
// quickly, chaos leaves long tails and missing close timestamps, drift
// slows resolution over time.
func Generate(cfg GeneratorConfig) []record {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = cfg.Now.UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	span := 730 // days
	var records []record

	for i := 0; i < cfg.Count; i++ {
		created := cfg.Now.AddDate(0, 0, -span+i*span/cfg.Count)
		creator := users[rng.Intn(len(users))]
		labels := labelPool[rng.Intn(len(labelPool))]

		r := record{
			Number:    i + 1,
			Title:     fmt.Sprintf("synthetic issue %d", i+1),
			State:     "open",
			Creator:   creator,
			Labels:    labels,
			CreatedAt: created.Format(time.RFC3339),
		}
		r.Events = append(r.Events, recordEvent{
			EventType: "opened", Actor: creator, EventDate: r.CreatedAt,
		})

		// First triage actions within the first few days.
		labelAt := created.Add(time.Duration(rng.Intn(72)+1) * time.Hour)
		r.Events = append(r.Events, recordEvent{
			EventType: "labeled", Actor: users[rng.Intn(len(users))],
			Label: labels[0], EventDate: labelAt.Format(time.RFC3339),
		})
		if rng.Float64() < 0.7 {
			assignAt := labelAt.Add(time.Duration(rng.Intn(48)+1) * time.Hour)
			r.Events = append(r.Events, recordEvent{
				EventType: "assigned", Actor: users[rng.Intn(len(users))],
				EventDate: assignAt.Format(time.RFC3339),
			})
		}
		for c := rng.Intn(5); c > 0; c-- {
			at := created.Add(time.Duration(rng.Intn(span/2*24)) * time.Hour)
			if at.After(cfg.Now) {
				at = cfg.Now
			}
			r.Events = append(r.Events, recordEvent{
				EventType: "commented", Actor: users[rng.Intn(len(users))],
				EventDate: at.Format(time.RFC3339),
			})
		}

		lifetime := 3.0 + rng.Float64()*20.0
		switch cfg.Scenario {
		case "chaos":
			if rng.Float64() < 0.3 {
				lifetime += 60 + rng.Float64()*120
			}
		case "drift":
			lifetime *= 1.0 + 2.0*float64(i)/float64(cfg.Count)
		}

		closedAt := created.Add(time.Duration(lifetime*24) * time.Hour)
		if closedAt.Before(cfg.Now) {
			closer := users[rng.Intn(len(users))]
			r.State = "closed"
			r.Events = append(r.Events, recordEvent{
				EventType: "closed", Actor: closer,
				EventDate: closedAt.Format(time.RFC3339),
			})
			// Chaos occasionally drops the top-level close timestamp so the
			// loader's closed-event fallback gets exercised.
			if cfg.Scenario != "chaos" || rng.Float64() > 0.1 {
				r.ClosedAt = closedAt.Format(time.RFC3339)
			}
		}

		records = append(records, r)
	}

	return records
}

// Save writes the records as a single JSON array, the shape Load expects.
func Save(path string, records []record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
