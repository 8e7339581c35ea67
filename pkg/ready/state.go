package ready

// State identifies the partition a task currently occupies. Exactly one
// state applies to every tracked task at all times.
type State int

const (
	// StatePending marks a live task with no unresolved dependencies.
	// Pending tasks are what [Graph.Peek] hands out.
	StatePending State = iota

	// StateBlocked marks a live task with at least one unresolved
	// dependency.
	StateBlocked

	// StateWaiting marks a task suspended by the caller. Waiting tasks
	// keep their edges but are invisible to readiness until resumed.
	StateWaiting

	// StatePlanned marks a task outside the live set: either staged ahead
	// of activation or retired after completion.
	StatePlanned
)

// String returns the lowercase partition name.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateBlocked:
		return "blocked"
	case StateWaiting:
		return "waiting"
	case StatePlanned:
		return "planned"
	default:
		return "unknown"
	}
}

// MarshalText implements [encoding.TextMarshaler] so states render as their
// names in JSON payloads.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
