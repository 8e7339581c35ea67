package feed

import (
	"time"

	"github.com/google/uuid"
)

// Kind classifies a transition event.
type Kind string

// Event kinds, one per session mutation.
const (
	KindAdded     Kind = "task.added"
	KindPlanned   Kind = "task.planned"
	KindActivated Kind = "task.activated"
	KindLinked    Kind = "task.linked"
	KindUnlinked  Kind = "task.unlinked"
	KindCompleted Kind = "task.completed"
	KindSevered   Kind = "task.severed"
	KindSuspended Kind = "task.suspended"
	KindResumed   Kind = "task.resumed"
	KindReset     Kind = "board.reset"
)

// Event describes one applied mutation and the board state it left behind.
type Event struct {
	// ID is a unique identifier for this event.
	ID string `json:"id"`

	// Kind names the mutation that produced the event.
	Kind Kind `json:"kind"`

	// Task is the primary task the mutation touched. Empty for board-wide
	// events like a reset.
	Task string `json:"task,omitempty"`

	// Other is the second task of an edge mutation: the dependency of a
	// link or unlink.
	Other string `json:"other,omitempty"`

	// From and To are the task's partition before and after the mutation,
	// when it changed ("pending", "blocked", "waiting", "planned").
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`

	// Partition sizes after the mutation.
	Pending int `json:"pending"`
	Blocked int `json:"blocked"`
	Waiting int `json:"waiting"`
	Planned int `json:"planned"`

	// Time is when the mutation was applied.
	Time time.Time `json:"time"`
}

// NewEvent creates an event of the given kind with a fresh ID and the
// current time.
func NewEvent(kind Kind) Event {
	return Event{
		ID:   uuid.NewString(),
		Kind: kind,
		Time: time.Now().UTC(),
	}
}
