package sim

import (
	"slices"
	"sort"
	"sync"

	"github.com/matzehuels/taskboard/pkg/feed"
	"github.com/matzehuels/taskboard/pkg/plan"
	"github.com/matzehuels/taskboard/pkg/ready"
)

// Session is a concurrency-safe driver around one readiness graph. All
// methods serialize on an internal mutex; mutations that change the graph
// publish a [feed.Event] describing the transition.
type Session struct {
	mu    sync.Mutex
	graph *ready.Graph[string]
	bus   *feed.Bus
	title string
}

// NewSession creates an empty session. A nil bus disables event
// publishing.
func NewSession(bus *feed.Bus) *Session {
	return &Session{
		graph: ready.New[string](),
		bus:   bus,
	}
}

// Title returns the title of the last applied plan, if any.
func (s *Session) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

// publish fills in the partition counts and sends the event. Callers hold
// the session lock.
func (s *Session) publish(e feed.Event) {
	if s.bus == nil {
		return
	}
	e.Pending, e.Blocked, e.Waiting, e.Planned = s.graph.Counts()
	_ = s.bus.Publish(e)
}

// stateName returns the partition name of t, or "" when t is unknown.
func (s *Session) stateName(t string) string {
	if st, ok := s.graph.State(t); ok {
		return st.String()
	}
	return ""
}

// mutate applies op to the primary task, publishing an event of the given
// kind when the call changed anything. changed is derived from the task's
// partition and the graph length, which covers every single-task
// operation.
func (s *Session) mutate(kind feed.Kind, task string, op func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.stateName(task)
	lenBefore := s.graph.Len()
	op()
	after := s.stateName(task)

	if before == after && s.graph.Len() == lenBefore {
		return false
	}

	e := feed.NewEvent(kind)
	e.Task = task
	e.From = before
	e.To = after
	s.publish(e)
	return true
}

// Add inserts t as a live, immediately ready task. Reports whether the
// session changed.
func (s *Session) Add(t string) bool {
	return s.mutate(feed.KindAdded, t, func() { s.graph.Add(t) })
}

// Plan stages t without activating it.
func (s *Session) Plan(t string) bool {
	return s.mutate(feed.KindPlanned, t, func() { s.graph.Plan(t) })
}

// Activate promotes a staged task into the live set.
func (s *Session) Activate(t string) bool {
	return s.mutate(feed.KindActivated, t, func() { s.graph.Activate(t) })
}

// Suspend parks a live task until resumed.
func (s *Session) Suspend(t string) bool {
	return s.mutate(feed.KindSuspended, t, func() { s.graph.Suspend(t) })
}

// Resume returns a suspended task to the live set.
func (s *Session) Resume(t string) bool {
	return s.mutate(feed.KindResumed, t, func() { s.graph.Resume(t) })
}

// Complete marks t finished and releases its dependents.
func (s *Session) Complete(t string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.stateName(t)
	if before == "" {
		return false
	}
	s.graph.Complete(t)

	e := feed.NewEvent(feed.KindCompleted)
	e.Task = t
	e.From = before
	e.To = s.stateName(t)
	s.publish(e)
	return true
}

// Sever releases t's dependents without finishing t itself.
func (s *Session) Sever(t string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.graph.Has(t) {
		return false
	}
	changed := len(s.graph.Dependents(t)) > 0
	s.graph.Sever(t)
	if !changed {
		return false
	}

	e := feed.NewEvent(feed.KindSevered)
	e.Task = t
	s.publish(e)
	return true
}

// Link records that dependent depends on dependency.
func (s *Session) Link(dependent, dependency string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.graph.Has(dependent) || !s.graph.Has(dependency) {
		return false
	}
	if slices.Contains(s.graph.Dependencies(dependent), dependency) {
		return false
	}

	before := s.stateName(dependent)
	s.graph.Link(dependent, dependency)

	e := feed.NewEvent(feed.KindLinked)
	e.Task = dependent
	e.Other = dependency
	e.From = before
	e.To = s.stateName(dependent)
	s.publish(e)
	return true
}

// Unlink removes the dependency edge between the two tasks.
func (s *Session) Unlink(dependent, dependency string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !slices.Contains(s.graph.Dependencies(dependent), dependency) {
		return false
	}

	before := s.stateName(dependent)
	s.graph.Unlink(dependent, dependency)

	e := feed.NewEvent(feed.KindUnlinked)
	e.Task = dependent
	e.Other = dependency
	e.From = before
	e.To = s.stateName(dependent)
	s.publish(e)
	return true
}

// Reset drops every task and edge.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.graph.Reset()
	s.title = ""
	s.publish(feed.NewEvent(feed.KindReset))
}

// Apply loads a validated plan into the session: every task is inserted
// (staged when held), every needs edge is linked, and paused tasks are
// suspended. Apply does not reset first; applying onto a non-empty session
// merges, with existing tasks left untouched.
func (s *Session) Apply(p *plan.Plan) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.title = p.Title
	s.mu.Unlock()

	for _, t := range p.Tasks {
		if t.Hold {
			s.Plan(t.ID)
		} else {
			s.Add(t.ID)
		}
	}
	for _, t := range p.Tasks {
		for _, need := range t.Needs {
			s.Link(t.ID, need)
		}
	}
	for _, t := range p.Tasks {
		if t.Paused {
			s.Suspend(t.ID)
		}
	}
	return nil
}

// Peek returns an arbitrary ready task, or [ready.ErrNonePending].
func (s *Session) Peek() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph.Peek()
}

// Step completes the lexicographically smallest ready task and returns it.
// The graph itself promises no ordering; the sort lives here so stepping
// through a board is reproducible.
func (s *Session) Step() (string, error) {
	s.mu.Lock()
	pending := s.graph.Tasks(ready.StatePending)
	s.mu.Unlock()

	if len(pending) == 0 {
		return "", ready.ErrNonePending
	}
	next := slices.Min(pending)
	s.Complete(next)
	return next, nil
}

// Idle reports whether no task is ready.
func (s *Session) Idle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph.Idle()
}

// HasSuspended reports whether any task is suspended.
func (s *Session) HasSuspended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph.HasSuspended()
}

// Deadlocked reports whether every remaining live task is blocked.
func (s *Session) Deadlocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph.Deadlocked()
}

// Cycle extracts one dependency loop from a deadlocked session, or nil.
func (s *Session) Cycle() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph.Cycle()
}

// Has reports whether t is tracked.
func (s *Session) Has(t string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph.Has(t)
}

// State returns t's partition and whether t is tracked.
func (s *Session) State(t string) (ready.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph.State(t)
}

// Counts returns the size of each partition.
func (s *Session) Counts() (pending, blocked, waiting, planned int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph.Counts()
}

// Tasks returns the members of one partition, sorted.
func (s *Session) Tasks(st ready.State) []string {
	s.mu.Lock()
	tasks := s.graph.Tasks(st)
	s.mu.Unlock()
	sort.Strings(tasks)
	return tasks
}

// Dependencies returns the tasks t still depends on, sorted.
func (s *Session) Dependencies(t string) []string {
	s.mu.Lock()
	deps := s.graph.Dependencies(t)
	s.mu.Unlock()
	sort.Strings(deps)
	return deps
}

// Dependents returns the tasks depending on t, sorted.
func (s *Session) Dependents(t string) []string {
	s.mu.Lock()
	deps := s.graph.Dependents(t)
	s.mu.Unlock()
	sort.Strings(deps)
	return deps
}

// Snapshot copies the full board state.
func (s *Session) Snapshot() ready.Snapshot[string] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph.Snapshot()
}
