package tracker

import (
	"testing"
	"time"
)

const sampleExport = `[
  {
    "number": 101,
    "title": "CLI crashes on empty config",
    "creator": "alice",
    "state": "closed",
    "labels": [{"name": "kind/bug"}, "area/cli"],
    "created_date": "2024-01-01T10:00:00Z",
    "closed_date": "2024-01-11T10:00:00Z",
    "events": [
      {"event_type": "opened", "actor": "alice", "event_date": "2024-01-01T10:00:00Z"},
      {"event_type": "labeled", "actor": "bob", "label": "kind/bug", "event_date": "2024-01-02T10:00:00Z"},
      {"event_type": "closed", "actor": "bob", "event_date": "2024-01-11T10:00:00Z"}
    ]
  },
  {
    "url": "https://example.com/repo/issues/102",
    "title": "Add dark mode",
    "created_by": "carol",
    "state": "open",
    "labels": ["enhancement"],
    "created_at": "2024-02-01T08:00:00Z",
    "events": [
      {"type": "opened", "author": "carol", "created_at": "2024-02-01T08:00:00Z"},
      {"type": "commented", "created_at": "2024-02-03T08:00:00Z"}
    ]
  },
  {
    "title": "record with no id or creation time",
    "state": "open"
  },
  {
    "number": 103,
    "title": "closed without timestamp",
    "state": "closed",
    "labels": [],
    "created_date": "2024-03-01T00:00:00Z",
    "events": [
      {"event_type": "opened", "event_date": "2024-03-01T00:00:00Z"},
      {"event_type": "commented"}
    ]
  }
]`

func TestParseExport(t *testing.T) {
	issues, diags, err := Parse([]byte(sampleExport))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if diags.TotalRecords != 4 {
		t.Errorf("TotalRecords = %d, want 4", diags.TotalRecords)
	}
	if diags.MalformedRecords != 1 {
		t.Errorf("MalformedRecords = %d, want 1", diags.MalformedRecords)
	}
	if len(issues) != 3 {
		t.Fatalf("len(issues) = %d, want 3", len(issues))
	}
	if diags.DroppedEvents != 1 {
		t.Errorf("DroppedEvents = %d, want 1 (commented event without timestamp)", diags.DroppedEvents)
	}
	if diags.ClosedWithoutTimestamp != 1 {
		t.Errorf("ClosedWithoutTimestamp = %d, want 1", diags.ClosedWithoutTimestamp)
	}
}

func TestParseFieldMapping(t *testing.T) {
	issues, _, err := Parse([]byte(sampleExport))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	first := issues[0]
	if first.ID != 101 {
		t.Errorf("ID = %d, want 101", first.ID)
	}
	if first.Creator != "alice" {
		t.Errorf("Creator = %q, want alice", first.Creator)
	}
	if first.State != StateClosed {
		t.Errorf("State = %q, want closed", first.State)
	}
	// Object-shaped and string-shaped labels both resolve to names.
	wantLabels := []string{"kind/bug", "area/cli"}
	for i, l := range wantLabels {
		if first.Labels[i] != l {
			t.Errorf("Labels[%d] = %q, want %q", i, first.Labels[i], l)
		}
	}
	if first.ClosedAt == nil || !first.ClosedAt.Equal(time.Date(2024, 1, 11, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("ClosedAt = %v, want 2024-01-11T10:00:00Z", first.ClosedAt)
	}
	if len(first.Events) != 3 || first.Events[1].Label != "kind/bug" {
		t.Errorf("events not mapped: %+v", first.Events)
	}

	// Alternate key spellings: url-derived id, created_by, type/created_at.
	second := issues[1]
	if second.ID != 102 {
		t.Errorf("ID = %d, want 102 (derived from url)", second.ID)
	}
	if second.Creator != "carol" {
		t.Errorf("Creator = %q, want carol", second.Creator)
	}
	if len(second.Events) != 2 || second.Events[0].Actor != "carol" {
		t.Errorf("alternate event keys not mapped: %+v", second.Events)
	}
}

func TestParseSortsEvents(t *testing.T) {
	const export = `[{
	  "number": 1,
	  "title": "unsorted",
	  "state": "open",
	  "labels": [],
	  "created_date": "2024-01-01T00:00:00Z",
	  "events": [
	    {"event_type": "commented", "event_date": "2024-01-05T00:00:00Z"},
	    {"event_type": "opened", "event_date": "2024-01-01T00:00:00Z"},
	    {"event_type": "commented", "event_date": "2024-01-03T00:00:00Z"}
	  ]
	}]`

	issues, _, err := Parse([]byte(export))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	events := issues[0].Events
	for i := 1; i < len(events); i++ {
		if events[i].OccurredAt.Before(events[i-1].OccurredAt) {
			t.Fatalf("events not sorted: %+v", events)
		}
	}
	if events[0].Type != EventOpened {
		t.Errorf("first event = %q, want opened", events[0].Type)
	}
}

func TestParseClosedTimestampFallback(t *testing.T) {
	// No closed_date field, but a terminal closed event supplies the time.
	const export = `[{
	  "number": 9,
	  "title": "fallback",
	  "state": "closed",
	  "labels": [],
	  "created_date": "2024-01-01T00:00:00Z",
	  "events": [
	    {"event_type": "opened", "event_date": "2024-01-01T00:00:00Z"},
	    {"event_type": "closed", "event_date": "2024-01-09T00:00:00Z"}
	  ]
	}]`

	issues, diags, err := Parse([]byte(export))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if issues[0].ClosedAt == nil {
		t.Fatalf("ClosedAt not derived from terminal closed event")
	}
	if !issues[0].ClosedAt.Equal(time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ClosedAt = %v, want 2024-01-09", issues[0].ClosedAt)
	}
	if diags.ClosedWithoutTimestamp != 0 {
		t.Errorf("fallback-resolved issue should not be tallied, got %d", diags.ClosedWithoutTimestamp)
	}
}

func TestParseRejectsNonArray(t *testing.T) {
	if _, _, err := Parse([]byte(`{"not": "an array"}`)); err == nil {
		t.Fatalf("expected an error for a non-array export")
	}
}

func TestParseTimeLayouts(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"2024-01-01T10:00:00Z", false},
		{"2024-01-01T10:00:00+02:00", false},
		{"2024-01-01T10:00:00", false},
		{"2024-01-01 10:00:00", false},
		{"2024-01-01", false},
		{"January 1st", true},
		{"", true},
	}
	for _, tt := range tests {
		_, err := ParseTime(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTime(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}
}
