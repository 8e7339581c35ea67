package ready

import "errors"

var (
	// ErrNonePending is returned by [Graph.Peek] when no task is currently
	// ready. Combine with [Graph.Deadlocked] and [Graph.HasSuspended] to
	// tell a drained graph from a stuck one.
	ErrNonePending = errors.New("no task is ready")
)

// node is the internal record for one task. Dependency edges are stored on
// both endpoints: ins holds the tasks this one still depends on, outs holds
// the tasks depending on it. For every recorded pair, d is in n.ins exactly
// when n is in d.outs.
type node[T comparable] struct {
	task  T
	state State
	ins   map[T]*node[T]
	outs  map[T]*node[T]
}

// Graph tracks tasks and the dependency edges between them, keeping every
// task filed in exactly one of four partitions: pending (ready to run),
// blocked (live but waiting on dependencies), waiting (suspended by the
// caller), and planned (staged before activation, or retired after
// completion). Every mutation updates only the touched tasks and their
// immediate neighbors; nothing is ever recomputed globally.
//
// The zero value is not usable - use [New] to create a valid Graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph[T comparable] struct {
	nodes   map[T]*node[T]
	pending map[T]*node[T]
	blocked map[T]*node[T]
	waiting map[T]*node[T]
	planned map[T]*node[T]
}

// New creates an empty readiness graph.
func New[T comparable]() *Graph[T] {
	g := &Graph[T]{}
	g.init()
	return g
}

func (g *Graph[T]) init() {
	g.nodes = make(map[T]*node[T])
	g.pending = make(map[T]*node[T])
	g.blocked = make(map[T]*node[T])
	g.waiting = make(map[T]*node[T])
	g.planned = make(map[T]*node[T])
}

// partition returns the member map backing s.
func (g *Graph[T]) partition(s State) map[T]*node[T] {
	switch s {
	case StatePending:
		return g.pending
	case StateBlocked:
		return g.blocked
	case StateWaiting:
		return g.waiting
	default:
		return g.planned
	}
}

// move refiles n under s, keeping the state tag and the partition maps in
// lockstep.
func (g *Graph[T]) move(n *node[T], s State) {
	delete(g.partition(n.state), n.task)
	n.state = s
	g.partition(s)[n.task] = n
}

// classify files a task entering the live set: ready when it has no
// unresolved dependencies, blocked otherwise.
func (g *Graph[T]) classify(n *node[T]) {
	if len(n.ins) == 0 {
		g.move(n, StatePending)
	} else {
		g.move(n, StateBlocked)
	}
}

func (g *Graph[T]) insert(t T, s State) {
	n := &node[T]{
		task:  t,
		state: s,
		ins:   make(map[T]*node[T]),
		outs:  make(map[T]*node[T]),
	}
	g.nodes[t] = n
	g.partition(s)[t] = n
}

// Add inserts t as a live task. A fresh task has no dependency edges, so it
// starts out pending. Adding a task that already exists, in any partition,
// is a no-op.
func (g *Graph[T]) Add(t T) {
	if _, ok := g.nodes[t]; ok {
		return
	}
	g.insert(t, StatePending)
}

// Plan inserts t as a staged task. Staged tasks collect dependency edges
// through [Graph.Link] but stay out of the live partitions until
// [Graph.Activate] promotes them. Planning an existing task is a no-op.
func (g *Graph[T]) Plan(t T) {
	if _, ok := g.nodes[t]; ok {
		return
	}
	g.insert(t, StatePlanned)
}

// Activate promotes a planned task into the live set, classifying it by the
// dependency edges recorded so far: ready when none remain unresolved,
// blocked otherwise. Tasks that are unknown or not planned are left alone.
func (g *Graph[T]) Activate(t T) {
	n, ok := g.nodes[t]
	if !ok || n.state != StatePlanned {
		return
	}
	g.classify(n)
}

// Link records that dependent depends on dependency. A pending dependent
// picking up its first unresolved dependency moves to blocked before the
// edge lands; waiting and planned dependents record the edge without
// changing partition. If either task is unknown, or the edge already
// exists, nothing happens. A task may be linked to itself, which keeps it
// blocked until the edge is removed again.
func (g *Graph[T]) Link(dependent, dependency T) {
	dn, ok := g.nodes[dependent]
	if !ok {
		return
	}
	pn, ok := g.nodes[dependency]
	if !ok {
		return
	}
	if _, ok := dn.ins[dependency]; ok {
		return
	}
	if len(dn.ins) == 0 && dn.state == StatePending {
		g.move(dn, StateBlocked)
	}
	dn.ins[dependency] = pn
	pn.outs[dependent] = dn
}

// Unlink removes the dependency edge between the two tasks. A blocked
// dependent losing its last unresolved dependency becomes ready; waiting
// and planned dependents keep their partition. Unknown tasks or a missing
// edge are ignored.
func (g *Graph[T]) Unlink(dependent, dependency T) {
	dn, ok := g.nodes[dependent]
	if !ok {
		return
	}
	pn, ok := g.nodes[dependency]
	if !ok {
		return
	}
	if _, ok := dn.ins[dependency]; !ok {
		return
	}
	delete(dn.ins, dependency)
	delete(pn.outs, dependent)
	if len(dn.ins) == 0 && dn.state == StateBlocked {
		g.move(dn, StatePending)
	}
}

// releaseDependents resolves n for everything that depends on it: n is
// deleted from each dependent's unresolved set, and blocked dependents
// that run out of unresolved dependencies become ready. Waiting and
// planned dependents never change partition here. Afterwards n has no
// outgoing edges.
func (g *Graph[T]) releaseDependents(n *node[T]) {
	for _, dn := range n.outs {
		delete(dn.ins, n.task)
		if len(dn.ins) == 0 && dn.state == StateBlocked {
			g.move(dn, StatePending)
		}
	}
	clear(n.outs)
}

// Complete marks t as finished. Everything depending on t stops counting it
// as unresolved, with blocked dependents becoming ready the moment their
// last dependency resolves; suspended dependents stay suspended until
// [Graph.Resume]. The finished task itself moves to the planned partition,
// keeping its own recorded dependencies behind. Completing an unknown task
// is a no-op; completing a suspended or blocked task is allowed.
func (g *Graph[T]) Complete(t T) {
	n, ok := g.nodes[t]
	if !ok {
		return
	}
	g.releaseDependents(n)
	g.move(n, StatePlanned)
}

// Sever releases everything that depends on t, exactly as [Graph.Complete]
// does, but leaves t itself in its current partition with its own
// dependencies intact. This lets a still-running task hand its dependents
// an early green light. Unknown tasks are ignored.
func (g *Graph[T]) Sever(t T) {
	n, ok := g.nodes[t]
	if !ok {
		return
	}
	g.releaseDependents(n)
}

// Suspend parks a live task in the waiting partition, removing it from
// readiness entirely until [Graph.Resume]. Both pending and blocked tasks
// can be suspended. Unknown, planned, and already-waiting tasks are
// ignored.
func (g *Graph[T]) Suspend(t T) {
	n, ok := g.nodes[t]
	if !ok || (n.state != StatePending && n.state != StateBlocked) {
		return
	}
	g.move(n, StateWaiting)
}

// Resume returns a suspended task to the live set, classifying it by
// whatever dependency edges it has accumulated meanwhile. Only waiting
// tasks are affected.
func (g *Graph[T]) Resume(t T) {
	n, ok := g.nodes[t]
	if !ok || n.state != StateWaiting {
		return
	}
	g.classify(n)
}

// Peek returns an arbitrary ready task. Which member of the pending
// partition comes back is unspecified and may differ between calls on
// identical state. When nothing is ready, Peek returns [ErrNonePending].
func (g *Graph[T]) Peek() (T, error) {
	for t := range g.pending {
		return t, nil
	}
	var zero T
	return zero, ErrNonePending
}

// Idle reports whether no task is ready to run.
func (g *Graph[T]) Idle() bool { return len(g.pending) == 0 }

// HasSuspended reports whether any task sits in the waiting partition.
func (g *Graph[T]) HasSuspended() bool { return len(g.waiting) > 0 }

// Deadlocked reports whether progress has stopped without caller
// intervention: nothing is ready, nothing is suspended, yet blocked tasks
// remain. The blocked tasks then depend on each other in a loop, or hang
// off planned tasks that were never activated. [Graph.Cycle] digs out a
// concrete loop when one is reachable.
func (g *Graph[T]) Deadlocked() bool {
	return len(g.pending) == 0 && len(g.waiting) == 0 && len(g.blocked) > 0
}

// Has reports whether t is tracked in any partition.
func (g *Graph[T]) Has(t T) bool {
	_, ok := g.nodes[t]
	return ok
}

// State returns the partition t currently occupies and true, or false when
// t is unknown.
func (g *Graph[T]) State(t T) (State, bool) {
	n, ok := g.nodes[t]
	if !ok {
		return 0, false
	}
	return n.state, true
}

// Len returns the total number of tracked tasks across all partitions.
func (g *Graph[T]) Len() int { return len(g.nodes) }

// Counts returns the size of each partition.
func (g *Graph[T]) Counts() (pending, blocked, waiting, planned int) {
	return len(g.pending), len(g.blocked), len(g.waiting), len(g.planned)
}

// Tasks returns the members of one partition. The order is not guaranteed.
func (g *Graph[T]) Tasks(s State) []T {
	part := g.partition(s)
	tasks := make([]T, 0, len(part))
	for t := range part {
		tasks = append(tasks, t)
	}
	return tasks
}

// Dependencies returns the tasks t still depends on. The order is not
// guaranteed. Returns nil if t is unknown.
func (g *Graph[T]) Dependencies(t T) []T {
	n, ok := g.nodes[t]
	if !ok {
		return nil
	}
	deps := make([]T, 0, len(n.ins))
	for d := range n.ins {
		deps = append(deps, d)
	}
	return deps
}

// Dependents returns the tasks that depend on t. The order is not
// guaranteed. Returns nil if t is unknown.
func (g *Graph[T]) Dependents(t T) []T {
	n, ok := g.nodes[t]
	if !ok {
		return nil
	}
	deps := make([]T, 0, len(n.outs))
	for d := range n.outs {
		deps = append(deps, d)
	}
	return deps
}

// Reset drops every task and edge. The graph is immediately reusable.
func (g *Graph[T]) Reset() { g.init() }
