package tracker

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// issueDTO mirrors one record of the JSON export. Exports from different
// scraper versions disagree on field names, so alternates are declared side
// by side and resolved in the mapper.
type issueDTO struct {
	Number json.Number `json:"number"`
	URL    string      `json:"url"`
	Title  string      `json:"title"`

	Creator   string `json:"creator"`
	CreatedBy string `json:"created_by"`

	State string `json:"state"`

	Labels []labelDTO `json:"labels"`

	CreatedDate string `json:"created_date"`
	CreatedAt   string `json:"created_at"`

	ClosedDate string `json:"closed_date"`
	ClosedAt   string `json:"closed_at"`

	Events []eventDTO `json:"events"`
}

// labelDTO accepts both plain strings and GitHub API label objects.
type labelDTO struct {
	Name string
}

func (l *labelDTO) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		l.Name = s
		return nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	l.Name = obj.Name
	return nil
}

// eventDTO mirrors one recorded action, again with alternate key spellings.
type eventDTO struct {
	EventType string `json:"event_type"`
	Type      string `json:"type"`
	Event     string `json:"event"`

	EventDate string `json:"event_date"`
	CreatedAt string `json:"created_at"`
	Date      string `json:"date"`

	Actor  string `json:"actor"`
	Author string `json:"author"`

	Label string `json:"label"`
}

func (e eventDTO) kind() string {
	return firstNonEmpty(e.EventType, e.Type, e.Event)
}

func (e eventDTO) timestamp() string {
	return firstNonEmpty(e.EventDate, e.CreatedAt, e.Date)
}

func (e eventDTO) actor() string {
	return firstNonEmpty(e.Actor, e.Author)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// issueNumber resolves the issue id from the number field, falling back to
// the trailing path segment of the url.
func (d issueDTO) issueNumber() (int, bool) {
	if d.Number != "" {
		if n, err := d.Number.Int64(); err == nil {
			return int(n), true
		}
	}
	if d.URL != "" {
		parts := strings.Split(strings.TrimRight(d.URL, "/"), "/")
		if n, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			return n, true
		}
	}
	return 0, false
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime parses the timestamp formats observed in issue exports.
func ParseTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
