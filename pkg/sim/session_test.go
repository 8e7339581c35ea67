package sim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/taskboard/pkg/feed"
	"github.com/matzehuels/taskboard/pkg/plan"
	"github.com/matzehuels/taskboard/pkg/ready"
)

func testPlan() *plan.Plan {
	return &plan.Plan{
		Title: "release",
		Tasks: []plan.Task{
			{ID: "build"},
			{ID: "test", Needs: []string{"build"}},
			{ID: "docs", Paused: true},
			{ID: "publish", Needs: []string{"test"}, Hold: true},
		},
	}
}

func TestSessionApply(t *testing.T) {
	s := NewSession(nil)
	require.NoError(t, s.Apply(testPlan()))

	assert.Equal(t, "release", s.Title())
	assert.Equal(t, []string{"build"}, s.Tasks(ready.StatePending))
	assert.Equal(t, []string{"test"}, s.Tasks(ready.StateBlocked))
	assert.Equal(t, []string{"docs"}, s.Tasks(ready.StateWaiting))
	assert.Equal(t, []string{"publish"}, s.Tasks(ready.StatePlanned))

	// Held tasks keep their recorded edges for activation time.
	assert.Equal(t, []string{"test"}, s.Dependencies("publish"))
}

func TestSessionApplyInvalidPlan(t *testing.T) {
	s := NewSession(nil)
	err := s.Apply(&plan.Plan{Tasks: []plan.Task{{ID: "a", Needs: []string{"ghost"}}}})
	assert.Error(t, err)
}

func TestSessionLifecycle(t *testing.T) {
	s := NewSession(nil)
	require.NoError(t, s.Apply(testPlan()))

	assert.True(t, s.Complete("build"))
	st, ok := s.State("test")
	require.True(t, ok)
	assert.Equal(t, ready.StatePending, st)

	assert.True(t, s.Complete("test"))
	assert.True(t, s.Activate("publish"))
	st, _ = s.State("publish")
	assert.Equal(t, ready.StatePending, st)

	assert.True(t, s.Resume("docs"))
	assert.Equal(t, []string{"docs", "publish"}, s.Tasks(ready.StatePending))
}

func TestSessionMutationsReportNoops(t *testing.T) {
	s := NewSession(nil)
	s.Add("a")
	s.Add("b")
	s.Link("a", "b")

	assert.False(t, s.Add("a"), "duplicate add")
	assert.False(t, s.Plan("a"), "plan over existing")
	assert.False(t, s.Activate("a"), "activate non-planned")
	assert.False(t, s.Link("a", "b"), "duplicate edge")
	assert.False(t, s.Link("a", "ghost"), "unknown dependency")
	assert.False(t, s.Unlink("b", "a"), "missing edge")
	assert.False(t, s.Complete("ghost"), "unknown task")
	assert.False(t, s.Sever("a"), "no dependents")
	assert.False(t, s.Resume("a"), "resume non-waiting")

	assert.True(t, s.Unlink("a", "b"))
	assert.True(t, s.Suspend("a"))
	assert.False(t, s.Suspend("a"), "double suspend")
}

func TestSessionStep(t *testing.T) {
	s := NewSession(nil)
	s.Add("c")
	s.Add("a")
	s.Add("b")

	got, err := s.Step()
	require.NoError(t, err)
	assert.Equal(t, "a", got, "Step completes the smallest ready task")

	got, err = s.Step()
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	s.Complete("c")
	_, err = s.Step()
	assert.ErrorIs(t, err, ready.ErrNonePending)
}

func TestSessionDeadlockProbe(t *testing.T) {
	s := NewSession(nil)
	s.Add("a")
	s.Add("b")
	s.Link("a", "b")
	s.Link("b", "a")

	assert.True(t, s.Idle())
	assert.True(t, s.Deadlocked())

	cycle := s.Cycle()
	require.Len(t, cycle, 3)
	assert.Equal(t, cycle[0], cycle[len(cycle)-1])

	// A suspended task means paused, not stuck.
	s.Add("c")
	s.Suspend("c")
	assert.False(t, s.Deadlocked())
	assert.True(t, s.HasSuspended())
}

func TestSessionPublishesEvents(t *testing.T) {
	bus := feed.NewBus(nil)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, err := bus.Subscribe(ctx)
	require.NoError(t, err)

	s := NewSession(bus)
	s.Add("build")
	s.Add("test")
	s.Link("test", "build")
	s.Add("build") // no-op, no event
	s.Complete("build")

	want := []struct {
		kind feed.Kind
		task string
		from string
		to   string
	}{
		{feed.KindAdded, "build", "", "pending"},
		{feed.KindAdded, "test", "", "pending"},
		{feed.KindLinked, "test", "pending", "blocked"},
		{feed.KindCompleted, "build", "pending", "planned"},
	}

	for _, w := range want {
		select {
		case e := <-events:
			assert.Equal(t, w.kind, e.Kind)
			assert.Equal(t, w.task, e.Task)
			assert.Equal(t, w.from, e.From)
			assert.Equal(t, w.to, e.To)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %s event", w.kind)
		}
	}

	// The completion event saw test already released.
	assert.Equal(t, []string{"test"}, s.Tasks(ready.StatePending))
}

func TestSessionReset(t *testing.T) {
	s := NewSession(nil)
	require.NoError(t, s.Apply(testPlan()))

	s.Reset()
	pending, blocked, waiting, planned := s.Counts()
	assert.Zero(t, pending+blocked+waiting+planned)
	assert.Empty(t, s.Title())
}
