package tracker

import "time"

// State is the lifecycle state of an issue in the snapshot.
type State string

const (
	// StateOpen indicates the issue was open at export time.
	StateOpen State = "open"
	// StateClosed indicates the issue reached a terminal state.
	StateClosed State = "closed"
)

// EventType classifies a recorded action against an issue.
type EventType string

const (
	EventOpened     EventType = "opened"
	EventCommented  EventType = "commented"
	EventLabeled    EventType = "labeled"
	EventAssigned   EventType = "assigned"
	EventClosed     EventType = "closed"
	EventReferenced EventType = "referenced"
)

// Event represents a single timestamped action in an issue's history.
type Event struct {
	// Type is the kind of action recorded.
	Type EventType `json:"type"`
	// Actor is the user identifier attributed to the action.
	Actor string `json:"actor,omitempty"`
	// Label carries the label value for labeled events.
	Label string `json:"label,omitempty"`
	// OccurredAt is the physical time of the action.
	OccurredAt time.Time `json:"occurredAt"`
}

// Issue is an immutable snapshot of a tracked unit of work.
// Events are sorted by timestamp at load time; the export does not
// guarantee ordering.
type Issue struct {
	// ID is the tracker-assigned issue number.
	ID int `json:"id"`
	// Title is the issue summary line.
	Title string `json:"title"`
	// Creator is the user who opened the issue.
	Creator string `json:"creator,omitempty"`
	// State is open or closed.
	State State `json:"state"`
	// Labels is the raw label set, possibly empty.
	Labels []string `json:"labels"`
	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
	// ClosedAt is set iff the issue is closed and the export carried a
	// close timestamp. A closed issue without one is a shape anomaly.
	ClosedAt *time.Time `json:"closedAt,omitempty"`
	// Events is the recorded action history.
	Events []Event `json:"events"`
}

// IsClosed reports whether the issue reached a terminal state.
func (i Issue) IsClosed() bool {
	return i.State == StateClosed
}
