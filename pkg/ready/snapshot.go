package ready

// Edge is one dependency relation in a [Snapshot]: the dependent task
// still depends on the dependency task.
type Edge[T comparable] struct {
	Dependent  T `json:"dependent"`
	Dependency T `json:"dependency"`
}

// Snapshot is a point-in-time copy of a [Graph]: the four partitions plus
// every recorded dependency edge. It shares no memory with the graph it
// came from, so callers can hold, compare, or serialize it freely while
// the graph keeps mutating.
type Snapshot[T comparable] struct {
	Pending []T       `json:"pending"`
	Blocked []T       `json:"blocked"`
	Waiting []T       `json:"waiting"`
	Planned []T       `json:"planned"`
	Edges   []Edge[T] `json:"edges"`
}

// Snapshot copies the full graph state. Slice ordering within the snapshot
// is arbitrary; sort before comparing two snapshots. Cost is proportional
// to the number of tasks plus edges.
func (g *Graph[T]) Snapshot() Snapshot[T] {
	s := Snapshot[T]{
		Pending: g.Tasks(StatePending),
		Blocked: g.Tasks(StateBlocked),
		Waiting: g.Tasks(StateWaiting),
		Planned: g.Tasks(StatePlanned),
	}
	for t, n := range g.nodes {
		for d := range n.ins {
			s.Edges = append(s.Edges, Edge[T]{Dependent: t, Dependency: d})
		}
	}
	return s
}
