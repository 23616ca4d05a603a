package tracker

import (
	"slices"
	"strings"
)

// Diagnostics tallies records the loader could not use in full. Anomalies
// are recovered locally: the affected record (or event) is skipped and
// counted, never dropped without trace.
type Diagnostics struct {
	// TotalRecords is the number of records in the export.
	TotalRecords int `json:"totalRecords"`
	// MalformedRecords failed schema validation or carried no usable id
	// or creation time; they are excluded entirely.
	MalformedRecords int `json:"malformedRecords"`
	// DroppedEvents had no recognizable type or timestamp.
	DroppedEvents int `json:"droppedEvents"`
	// ClosedWithoutTimestamp counts closed issues with no close time from
	// any source; they remain in the collection but are excluded from
	// analyses that require the close time.
	ClosedWithoutTimestamp int `json:"closedWithoutTimestamp"`
}

// MapIssue transforms a raw export record into a domain Issue. The second
// return value reports how many events were dropped for missing fields.
func MapIssue(d issueDTO) (Issue, int, bool) {
	id, ok := d.issueNumber()
	if !ok {
		return Issue{}, 0, false
	}

	created, err := ParseTime(firstNonEmpty(d.CreatedDate, d.CreatedAt))
	if err != nil {
		return Issue{}, 0, false
	}

	issue := Issue{
		ID:        id,
		Title:     d.Title,
		Creator:   firstNonEmpty(d.Creator, d.CreatedBy),
		State:     normalizeState(d.State),
		CreatedAt: created,
	}

	for _, l := range d.Labels {
		if l.Name != "" {
			issue.Labels = append(issue.Labels, l.Name)
		}
	}

	if raw := firstNonEmpty(d.ClosedDate, d.ClosedAt); raw != "" {
		if t, err := ParseTime(raw); err == nil {
			issue.ClosedAt = &t
		}
	}

	dropped := 0
	for _, e := range d.Events {
		kind := e.kind()
		ts := e.timestamp()
		if kind == "" || ts == "" {
			dropped++
			continue
		}
		occurred, err := ParseTime(ts)
		if err != nil {
			dropped++
			continue
		}
		issue.Events = append(issue.Events, Event{
			Type:       EventType(strings.ToLower(kind)),
			Actor:      e.actor(),
			Label:      e.Label,
			OccurredAt: occurred,
		})
	}

	// The export does not guarantee event ordering.
	slices.SortStableFunc(issue.Events, func(a, b Event) int {
		return a.OccurredAt.Compare(b.OccurredAt)
	})

	// Fallback: a closed issue without an explicit close time inherits the
	// timestamp of its terminal closed event when one exists.
	if issue.IsClosed() && issue.ClosedAt == nil {
		for i := len(issue.Events) - 1; i >= 0; i-- {
			if issue.Events[i].Type == EventClosed {
				t := issue.Events[i].OccurredAt
				issue.ClosedAt = &t
				break
			}
		}
	}

	return issue, dropped, true
}

func normalizeState(raw string) State {
	if strings.Contains(strings.ToLower(raw), "close") {
		return StateClosed
	}
	return StateOpen
}
