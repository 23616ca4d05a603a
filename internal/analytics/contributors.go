package analytics

import (
	"slices"
	"strings"

	"issuelens/internal/tracker"
)

// ContributorActivity tallies one user's footprint across the snapshot.
type ContributorActivity struct {
	User     string `json:"user"`
	Created  int    `json:"created"`
	Closed   int    `json:"closed"`
	Comments int    `json:"comments"`
	Total    int    `json:"total"`
}

// ContributorReport ranks contributors by total activity descending, ties
// broken by user identifier ascending. Users with zero total activity are
// excluded; unlike the other views this one does not zero-fill.
type ContributorReport struct {
	Ranked []ContributorActivity `json:"ranked"`
}

// RankContributors tallies per-user issue creation, closing and commenting
// across the whole collection. Creation counts once per issue authored;
// closing and commenting count once per attributed event.
func RankContributors(issues []tracker.Issue) ContributorReport {
	byUser := make(map[string]*ContributorActivity)
	get := func(user string) *ContributorActivity {
		if a, ok := byUser[user]; ok {
			return a
		}
		a := &ContributorActivity{User: user}
		byUser[user] = a
		return a
	}

	for _, issue := range issues {
		if issue.Creator != "" {
			get(issue.Creator).Created++
		}
		for _, ev := range issue.Events {
			if ev.Actor == "" {
				continue
			}
			switch ev.Type {
			case tracker.EventClosed:
				get(ev.Actor).Closed++
			case tracker.EventCommented:
				get(ev.Actor).Comments++
			}
		}
	}

	report := ContributorReport{}
	for _, a := range byUser {
		a.Total = a.Created + a.Closed + a.Comments
		if a.Total == 0 {
			continue
		}
		report.Ranked = append(report.Ranked, *a)
	}

	slices.SortFunc(report.Ranked, func(a, b ContributorActivity) int {
		if a.Total != b.Total {
			return b.Total - a.Total
		}
		return strings.Compare(a.User, b.User)
	})

	return report
}
