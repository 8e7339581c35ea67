package ready_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/matzehuels/taskboard/pkg/ready"
)

var allStates = []ready.State{
	ready.StatePending,
	ready.StateBlocked,
	ready.StateWaiting,
	ready.StatePlanned,
}

// checkInvariants verifies the guarantees that must hold after every
// operation: partition sizes sum to the task count, live tasks are pending
// exactly when they have no unresolved dependencies, and every edge is
// recorded on both endpoints.
func checkInvariants(t *testing.T, g *ready.Graph[string]) {
	t.Helper()

	pending, blocked, waiting, planned := g.Counts()
	if total := pending + blocked + waiting + planned; total != g.Len() {
		t.Fatalf("partition sizes sum to %d, want %d", total, g.Len())
	}

	for _, task := range g.Tasks(ready.StatePending) {
		if deps := g.Dependencies(task); len(deps) != 0 {
			t.Fatalf("pending task %q has unresolved dependencies %v", task, deps)
		}
	}
	for _, task := range g.Tasks(ready.StateBlocked) {
		if deps := g.Dependencies(task); len(deps) == 0 {
			t.Fatalf("blocked task %q has no unresolved dependencies", task)
		}
	}

	for _, st := range allStates {
		for _, task := range g.Tasks(st) {
			got, ok := g.State(task)
			if !ok || got != st {
				t.Fatalf("State(%q) = %v, %v, want %v, true", task, got, ok, st)
			}
			for _, dep := range g.Dependencies(task) {
				if !slices.Contains(g.Dependents(dep), task) {
					t.Fatalf("edge %q -> %q missing on the dependency side", task, dep)
				}
			}
			for _, dep := range g.Dependents(task) {
				if !slices.Contains(g.Dependencies(dep), task) {
					t.Fatalf("edge %q -> %q missing on the dependent side", dep, task)
				}
			}
		}
	}
}

func stateOf(t *testing.T, g *ready.Graph[string], task string) ready.State {
	t.Helper()
	st, ok := g.State(task)
	if !ok {
		t.Fatalf("State(%q): task not tracked", task)
	}
	return st
}

func TestAdd(t *testing.T) {
	g := ready.New[string]()
	g.Add("a")

	if got := stateOf(t, g, "a"); got != ready.StatePending {
		t.Errorf("state after Add = %v, want %v", got, ready.StatePending)
	}
	if g.Idle() {
		t.Error("Idle() = true with a pending task")
	}
	checkInvariants(t, g)
}

func TestAddExistingIsNoOp(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *ready.Graph[string])
		want  ready.State
	}{
		{
			name:  "pending stays pending",
			setup: func(g *ready.Graph[string]) { g.Add("a") },
			want:  ready.StatePending,
		},
		{
			name: "blocked stays blocked",
			setup: func(g *ready.Graph[string]) {
				g.Add("a")
				g.Add("b")
				g.Link("a", "b")
			},
			want: ready.StateBlocked,
		},
		{
			name: "waiting stays waiting",
			setup: func(g *ready.Graph[string]) {
				g.Add("a")
				g.Suspend("a")
			},
			want: ready.StateWaiting,
		},
		{
			name:  "planned stays planned",
			setup: func(g *ready.Graph[string]) { g.Plan("a") },
			want:  ready.StatePlanned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := ready.New[string]()
			tt.setup(g)

			g.Add("a")

			if got := stateOf(t, g, "a"); got != tt.want {
				t.Errorf("state after repeated Add = %v, want %v", got, tt.want)
			}
			checkInvariants(t, g)
		})
	}
}

func TestPlanStaysOutOfReadiness(t *testing.T) {
	g := ready.New[string]()
	g.Plan("a")

	if got := stateOf(t, g, "a"); got != ready.StatePlanned {
		t.Errorf("state after Plan = %v, want %v", got, ready.StatePlanned)
	}
	if !g.Idle() {
		t.Error("Idle() = false with only a planned task")
	}
	if _, err := g.Peek(); !errors.Is(err, ready.ErrNonePending) {
		t.Errorf("Peek() error = %v, want ErrNonePending", err)
	}

	g.Plan("a") // idempotent
	if g.Len() != 1 {
		t.Errorf("Len() after repeated Plan = %d, want 1", g.Len())
	}
	checkInvariants(t, g)
}

func TestActivate(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *ready.Graph[string])
		want  ready.State
	}{
		{
			name:  "no edges activates to pending",
			setup: func(g *ready.Graph[string]) { g.Plan("a") },
			want:  ready.StatePending,
		},
		{
			name: "recorded edges activate to blocked",
			setup: func(g *ready.Graph[string]) {
				g.Plan("a")
				g.Add("dep")
				g.Link("a", "dep")
			},
			want: ready.StateBlocked,
		},
		{
			name: "edges resolved while staged activate to pending",
			setup: func(g *ready.Graph[string]) {
				g.Plan("a")
				g.Add("dep")
				g.Link("a", "dep")
				g.Complete("dep")
			},
			want: ready.StatePending,
		},
		{
			name: "completed task can be revived",
			setup: func(g *ready.Graph[string]) {
				g.Add("a")
				g.Complete("a")
			},
			want: ready.StatePending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := ready.New[string]()
			tt.setup(g)

			g.Activate("a")

			if got := stateOf(t, g, "a"); got != tt.want {
				t.Errorf("state after Activate = %v, want %v", got, tt.want)
			}
			checkInvariants(t, g)
		})
	}
}

func TestActivateNonPlannedIsNoOp(t *testing.T) {
	g := ready.New[string]()
	g.Add("live")
	g.Add("dep")
	g.Link("live", "dep")
	g.Add("parked")
	g.Suspend("parked")

	g.Activate("live")
	g.Activate("parked")
	g.Activate("ghost")

	if got := stateOf(t, g, "live"); got != ready.StateBlocked {
		t.Errorf("blocked task after Activate = %v, want %v", got, ready.StateBlocked)
	}
	if got := stateOf(t, g, "parked"); got != ready.StateWaiting {
		t.Errorf("waiting task after Activate = %v, want %v", got, ready.StateWaiting)
	}
	if g.Has("ghost") {
		t.Error("Activate on an unknown task created a node")
	}
	checkInvariants(t, g)
}

func TestLink(t *testing.T) {
	t.Run("first edge blocks a pending dependent", func(t *testing.T) {
		g := ready.New[string]()
		g.Add("a")
		g.Add("b")

		g.Link("a", "b")

		if got := stateOf(t, g, "a"); got != ready.StateBlocked {
			t.Errorf("dependent state = %v, want %v", got, ready.StateBlocked)
		}
		if got := stateOf(t, g, "b"); got != ready.StatePending {
			t.Errorf("dependency state = %v, want %v", got, ready.StatePending)
		}
		next, err := g.Peek()
		if err != nil || next != "b" {
			t.Errorf("Peek() = %q, %v, want %q, nil", next, err, "b")
		}
		checkInvariants(t, g)
	})

	t.Run("additional edges keep the dependent blocked", func(t *testing.T) {
		g := ready.New[string]()
		g.Add("a")
		g.Add("b")
		g.Add("c")
		g.Link("a", "b")
		g.Link("a", "c")

		if got := stateOf(t, g, "a"); got != ready.StateBlocked {
			t.Errorf("dependent state = %v, want %v", got, ready.StateBlocked)
		}
		deps := g.Dependencies("a")
		slices.Sort(deps)
		if !slices.Equal(deps, []string{"b", "c"}) {
			t.Errorf("Dependencies(a) = %v, want [b c]", deps)
		}
		checkInvariants(t, g)
	})

	t.Run("duplicate edge is a no-op", func(t *testing.T) {
		g := ready.New[string]()
		g.Add("a")
		g.Add("b")
		g.Link("a", "b")
		g.Link("a", "b")

		if got := len(g.Dependencies("a")); got != 1 {
			t.Errorf("edge count after duplicate Link = %d, want 1", got)
		}
		// A single Unlink must fully release the dependent.
		g.Unlink("a", "b")
		if got := stateOf(t, g, "a"); got != ready.StatePending {
			t.Errorf("state after Unlink = %v, want %v", got, ready.StatePending)
		}
		checkInvariants(t, g)
	})

	t.Run("unknown endpoints are ignored", func(t *testing.T) {
		g := ready.New[string]()
		g.Add("a")

		g.Link("a", "ghost")
		g.Link("ghost", "a")

		if got := stateOf(t, g, "a"); got != ready.StatePending {
			t.Errorf("state after Link with unknown endpoint = %v, want %v", got, ready.StatePending)
		}
		if g.Has("ghost") {
			t.Error("Link created a node for an unknown task")
		}
		checkInvariants(t, g)
	})

	t.Run("waiting dependent records the edge without moving", func(t *testing.T) {
		g := ready.New[string]()
		g.Add("a")
		g.Add("b")
		g.Suspend("a")

		g.Link("a", "b")

		if got := stateOf(t, g, "a"); got != ready.StateWaiting {
			t.Errorf("state after Link = %v, want %v", got, ready.StateWaiting)
		}
		if got := len(g.Dependencies("a")); got != 1 {
			t.Errorf("edge count = %d, want 1", got)
		}
		checkInvariants(t, g)
	})

	t.Run("planned dependent records the edge without moving", func(t *testing.T) {
		g := ready.New[string]()
		g.Plan("a")
		g.Add("b")

		g.Link("a", "b")

		if got := stateOf(t, g, "a"); got != ready.StatePlanned {
			t.Errorf("state after Link = %v, want %v", got, ready.StatePlanned)
		}
		if got := len(g.Dependencies("a")); got != 1 {
			t.Errorf("edge count = %d, want 1", got)
		}
		checkInvariants(t, g)
	})

	t.Run("self link blocks until removed", func(t *testing.T) {
		g := ready.New[string]()
		g.Add("a")

		g.Link("a", "a")
		if got := stateOf(t, g, "a"); got != ready.StateBlocked {
			t.Errorf("state after self Link = %v, want %v", got, ready.StateBlocked)
		}

		g.Unlink("a", "a")
		if got := stateOf(t, g, "a"); got != ready.StatePending {
			t.Errorf("state after self Unlink = %v, want %v", got, ready.StatePending)
		}
		checkInvariants(t, g)
	})
}

func TestUnlink(t *testing.T) {
	t.Run("last edge readies a blocked dependent", func(t *testing.T) {
		g := ready.New[string]()
		g.Add("a")
		g.Add("b")
		g.Link("a", "b")

		g.Unlink("a", "b")

		if got := stateOf(t, g, "a"); got != ready.StatePending {
			t.Errorf("state after Unlink = %v, want %v", got, ready.StatePending)
		}
		if got := len(g.Dependents("b")); got != 0 {
			t.Errorf("dependency still has %d dependents", got)
		}
		checkInvariants(t, g)
	})

	t.Run("remaining edges keep the dependent blocked", func(t *testing.T) {
		g := ready.New[string]()
		g.Add("a")
		g.Add("b")
		g.Add("c")
		g.Link("a", "b")
		g.Link("a", "c")

		g.Unlink("a", "b")

		if got := stateOf(t, g, "a"); got != ready.StateBlocked {
			t.Errorf("state after Unlink = %v, want %v", got, ready.StateBlocked)
		}
		checkInvariants(t, g)
	})

	t.Run("waiting dependent stays suspended", func(t *testing.T) {
		g := ready.New[string]()
		g.Add("a")
		g.Add("b")
		g.Link("a", "b")
		g.Suspend("a")

		g.Unlink("a", "b")

		if got := stateOf(t, g, "a"); got != ready.StateWaiting {
			t.Errorf("state after Unlink = %v, want %v", got, ready.StateWaiting)
		}
		// Once resumed, the cleared edge set makes it ready.
		g.Resume("a")
		if got := stateOf(t, g, "a"); got != ready.StatePending {
			t.Errorf("state after Resume = %v, want %v", got, ready.StatePending)
		}
		checkInvariants(t, g)
	})

	t.Run("missing edge and unknown endpoints are ignored", func(t *testing.T) {
		g := ready.New[string]()
		g.Add("a")
		g.Add("b")

		g.Unlink("a", "b")
		g.Unlink("a", "ghost")
		g.Unlink("ghost", "b")

		if got := stateOf(t, g, "a"); got != ready.StatePending {
			t.Errorf("state = %v, want %v", got, ready.StatePending)
		}
		checkInvariants(t, g)
	})
}

func TestComplete(t *testing.T) {
	t.Run("unblocks the sole dependent", func(t *testing.T) {
		g := ready.New[string]()
		g.Add("a")
		g.Add("b")
		g.Link("a", "b")

		g.Complete("b")

		if got := stateOf(t, g, "a"); got != ready.StatePending {
			t.Errorf("dependent state = %v, want %v", got, ready.StatePending)
		}
		if got := stateOf(t, g, "b"); got != ready.StatePlanned {
			t.Errorf("completed state = %v, want %v", got, ready.StatePlanned)
		}
		pending, blocked, _, planned := g.Counts()
		if pending != 1 || blocked != 0 || planned != 1 {
			t.Errorf("Counts() = %d pending, %d blocked, %d planned, want 1, 0, 1",
				pending, blocked, planned)
		}
		checkInvariants(t, g)
	})

	t.Run("dependent with remaining dependencies stays blocked", func(t *testing.T) {
		g := ready.New[string]()
		g.Add("a")
		g.Add("b")
		g.Add("c")
		g.Link("a", "b")
		g.Link("a", "c")

		g.Complete("b")

		if got := stateOf(t, g, "a"); got != ready.StateBlocked {
			t.Errorf("dependent state = %v, want %v", got, ready.StateBlocked)
		}
		if deps := g.Dependencies("a"); !slices.Equal(deps, []string{"c"}) {
			t.Errorf("Dependencies(a) = %v, want [c]", deps)
		}
		checkInvariants(t, g)
	})

	t.Run("waiting dependent stays suspended", func(t *testing.T) {
		g := ready.New[string]()
		g.Add("a")
		g.Add("b")
		g.Link("a", "b")
		g.Suspend("a")

		g.Complete("b")

		if got := stateOf(t, g, "a"); got != ready.StateWaiting {
			t.Errorf("dependent state = %v, want %v", got, ready.StateWaiting)
		}
		g.Resume("a")
		if got := stateOf(t, g, "a"); got != ready.StatePending {
			t.Errorf("state after Resume = %v, want %v", got, ready.StatePending)
		}
		checkInvariants(t, g)
	})

	t.Run("planned dependent is not activated by completion", func(t *testing.T) {
		g := ready.New[string]()
		g.Plan("a")
		g.Add("b")
		g.Link("a", "b")

		g.Complete("b")

		if got := stateOf(t, g, "a"); got != ready.StatePlanned {
			t.Errorf("staged dependent state = %v, want %v", got, ready.StatePlanned)
		}
		// Activation afterwards sees the resolved edge set.
		g.Activate("a")
		if got := stateOf(t, g, "a"); got != ready.StatePending {
			t.Errorf("state after Activate = %v, want %v", got, ready.StatePending)
		}
		checkInvariants(t, g)
	})

	t.Run("keeps its own dependencies behind", func(t *testing.T) {
		g := ready.New[string]()
		g.Add("a")
		g.Add("b")
		g.Link("a", "b")

		g.Complete("a") // finished while still blocked on b

		if got := stateOf(t, g, "a"); got != ready.StatePlanned {
			t.Errorf("completed state = %v, want %v", got, ready.StatePlanned)
		}
		if deps := g.Dependencies("a"); !slices.Equal(deps, []string{"b"}) {
			t.Errorf("Dependencies(a) = %v, want [b]", deps)
		}

		// Completing the dependency resolves the leftover edge without
		// reviving the retired task.
		g.Complete("b")
		if got := stateOf(t, g, "a"); got != ready.StatePlanned {
			t.Errorf("retired state after dependency completed = %v, want %v", got, ready.StatePlanned)
		}
		if deps := g.Dependencies("a"); len(deps) != 0 {
			t.Errorf("Dependencies(a) = %v, want none", deps)
		}
		checkInvariants(t, g)
	})

	t.Run("suspended task can be completed", func(t *testing.T) {
		g := ready.New[string]()
		g.Add("a")
		g.Suspend("a")

		g.Complete("a")

		if got := stateOf(t, g, "a"); got != ready.StatePlanned {
			t.Errorf("state = %v, want %v", got, ready.StatePlanned)
		}
		if g.HasSuspended() {
			t.Error("HasSuspended() = true after completing the suspended task")
		}
		checkInvariants(t, g)
	})

	t.Run("unknown task is ignored", func(t *testing.T) {
		g := ready.New[string]()
		g.Add("a")

		g.Complete("ghost")

		if g.Len() != 1 {
			t.Errorf("Len() = %d, want 1", g.Len())
		}
		checkInvariants(t, g)
	})
}

func TestSever(t *testing.T) {
	t.Run("releases dependents but keeps its own place", func(t *testing.T) {
		g := ready.New[string]()
		g.Add("a")
		g.Add("b")
		g.Add("c")
		g.Link("a", "b") // a depends on b
		g.Link("b", "c") // b depends on c

		g.Sever("b")

		if got := stateOf(t, g, "a"); got != ready.StatePending {
			t.Errorf("released dependent state = %v, want %v", got, ready.StatePending)
		}
		if got := stateOf(t, g, "b"); got != ready.StateBlocked {
			t.Errorf("severed task state = %v, want %v", got, ready.StateBlocked)
		}
		if deps := g.Dependencies("b"); !slices.Equal(deps, []string{"c"}) {
			t.Errorf("severed task dependencies = %v, want [c]", deps)
		}
		if got := len(g.Dependents("b")); got != 0 {
			t.Errorf("severed task still has %d dependents", got)
		}
		checkInvariants(t, g)
	})

	t.Run("waiting dependents stay suspended", func(t *testing.T) {
		g := ready.New[string]()
		g.Add("a")
		g.Add("b")
		g.Link("a", "b")
		g.Suspend("a")

		g.Sever("b")

		if got := stateOf(t, g, "a"); got != ready.StateWaiting {
			t.Errorf("dependent state = %v, want %v", got, ready.StateWaiting)
		}
		checkInvariants(t, g)
	})

	t.Run("unknown task is ignored", func(t *testing.T) {
		g := ready.New[string]()
		g.Sever("ghost")
		if g.Len() != 0 {
			t.Errorf("Len() = %d, want 0", g.Len())
		}
	})
}

func TestSuspendResume(t *testing.T) {
	t.Run("suspend masks readiness and resume restores it", func(t *testing.T) {
		g := ready.New[string]()
		g.Add("a")

		g.Suspend("a")
		if got := stateOf(t, g, "a"); got != ready.StateWaiting {
			t.Errorf("state after Suspend = %v, want %v", got, ready.StateWaiting)
		}
		if !g.Idle() || !g.HasSuspended() {
			t.Errorf("Idle() = %v, HasSuspended() = %v, want true, true", g.Idle(), g.HasSuspended())
		}

		g.Resume("a")
		if got := stateOf(t, g, "a"); got != ready.StatePending {
			t.Errorf("state after Resume = %v, want %v", got, ready.StatePending)
		}
		checkInvariants(t, g)
	})

	t.Run("resume classifies by current edges", func(t *testing.T) {
		g := ready.New[string]()
		g.Add("a")
		g.Add("b")
		g.Suspend("a")
		g.Link("a", "b") // edge arrives while suspended

		g.Resume("a")

		if got := stateOf(t, g, "a"); got != ready.StateBlocked {
			t.Errorf("state after Resume = %v, want %v", got, ready.StateBlocked)
		}
		checkInvariants(t, g)
	})

	t.Run("suspension tells paused from stuck", func(t *testing.T) {
		g := ready.New[string]()
		g.Add("a")
		g.Add("b")
		g.Link("a", "b")

		if g.Deadlocked() {
			t.Fatal("Deadlocked() = true with a pending task")
		}
		g.Suspend("b")
		if g.Deadlocked() {
			t.Error("Deadlocked() = true while a task is suspended")
		}
		if !g.Idle() {
			t.Error("Idle() = false with the only pending task suspended")
		}

		g.Resume("b")
		if g.Deadlocked() {
			t.Error("Deadlocked() = true after Resume")
		}
		checkInvariants(t, g)
	})

	t.Run("no-op cases", func(t *testing.T) {
		g := ready.New[string]()
		g.Plan("staged")
		g.Add("live")
		g.Suspend("live")

		g.Suspend("staged") // planned tasks cannot be suspended
		g.Suspend("live")   // repeated suspend
		g.Suspend("ghost")
		g.Resume("staged") // only waiting tasks resume
		g.Resume("ghost")

		if got := stateOf(t, g, "staged"); got != ready.StatePlanned {
			t.Errorf("staged state = %v, want %v", got, ready.StatePlanned)
		}
		if got := stateOf(t, g, "live"); got != ready.StateWaiting {
			t.Errorf("suspended state = %v, want %v", got, ready.StateWaiting)
		}
		checkInvariants(t, g)
	})
}

func TestPeek(t *testing.T) {
	g := ready.New[string]()

	if _, err := g.Peek(); !errors.Is(err, ready.ErrNonePending) {
		t.Errorf("Peek() on empty graph error = %v, want ErrNonePending", err)
	}

	g.Add("only")
	for range 3 {
		next, err := g.Peek()
		if err != nil || next != "only" {
			t.Fatalf("Peek() = %q, %v, want %q, nil", next, err, "only")
		}
	}
	if g.Len() != 1 {
		t.Errorf("Peek removed the task: Len() = %d, want 1", g.Len())
	}
}

func TestDeadlocked(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *ready.Graph[string])
		want  bool
	}{
		{
			name:  "empty graph",
			setup: func(g *ready.Graph[string]) {},
			want:  false,
		},
		{
			name: "pending task present",
			setup: func(g *ready.Graph[string]) {
				g.Add("a")
				g.Add("b")
				g.Link("a", "b")
			},
			want: false,
		},
		{
			name: "two task cycle",
			setup: func(g *ready.Graph[string]) {
				g.Add("a")
				g.Add("b")
				g.Link("a", "b")
				g.Link("b", "a")
			},
			want: true,
		},
		{
			name: "suspended task masks deadlock",
			setup: func(g *ready.Graph[string]) {
				g.Add("a")
				g.Add("b")
				g.Link("a", "b")
				g.Link("b", "a")
				g.Add("c")
				g.Suspend("c")
			},
			want: false,
		},
		{
			name: "blocked on a staged task",
			setup: func(g *ready.Graph[string]) {
				g.Plan("staged")
				g.Add("a")
				g.Link("a", "staged")
			},
			want: true,
		},
		{
			name: "only planned tasks remain",
			setup: func(g *ready.Graph[string]) {
				g.Plan("a")
				g.Plan("b")
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := ready.New[string]()
			tt.setup(g)

			if got := g.Deadlocked(); got != tt.want {
				t.Errorf("Deadlocked() = %v, want %v", got, tt.want)
			}
			checkInvariants(t, g)
		})
	}
}

func TestReset(t *testing.T) {
	g := ready.New[string]()
	g.Add("a")
	g.Add("b")
	g.Link("a", "b")
	g.Plan("c")
	g.Suspend("a")

	g.Reset()

	if g.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", g.Len())
	}
	if !g.Idle() || g.HasSuspended() || g.Deadlocked() {
		t.Error("Reset graph still reports activity")
	}

	// The graph must be fully reusable.
	g.Add("a")
	if got := stateOf(t, g, "a"); got != ready.StatePending {
		t.Errorf("state after reuse = %v, want %v", got, ready.StatePending)
	}
	checkInvariants(t, g)
}

func TestSnapshot(t *testing.T) {
	g := ready.New[string]()
	g.Add("a")
	g.Add("b")
	g.Link("a", "b")
	g.Plan("c")
	g.Link("c", "a")
	g.Add("d")
	g.Suspend("d")

	snap := g.Snapshot()

	slices.Sort(snap.Blocked)
	if !slices.Equal(snap.Pending, []string{"b"}) {
		t.Errorf("snapshot pending = %v, want [b]", snap.Pending)
	}
	if !slices.Equal(snap.Blocked, []string{"a"}) {
		t.Errorf("snapshot blocked = %v, want [a]", snap.Blocked)
	}
	if !slices.Equal(snap.Waiting, []string{"d"}) {
		t.Errorf("snapshot waiting = %v, want [d]", snap.Waiting)
	}
	if !slices.Equal(snap.Planned, []string{"c"}) {
		t.Errorf("snapshot planned = %v, want [c]", snap.Planned)
	}

	wantEdges := []ready.Edge[string]{
		{Dependent: "a", Dependency: "b"},
		{Dependent: "c", Dependency: "a"},
	}
	slices.SortFunc(snap.Edges, func(x, y ready.Edge[string]) int {
		if x.Dependent != y.Dependent {
			if x.Dependent < y.Dependent {
				return -1
			}
			return 1
		}
		return 0
	})
	if !slices.Equal(snap.Edges, wantEdges) {
		t.Errorf("snapshot edges = %v, want %v", snap.Edges, wantEdges)
	}

	// The snapshot is detached from later mutations.
	g.Complete("b")
	if !slices.Equal(snap.Pending, []string{"b"}) {
		t.Error("snapshot changed after a later mutation")
	}
}

func TestIntegerTasks(t *testing.T) {
	g := ready.New[int]()
	g.Add(1)
	g.Add(2)
	g.Link(1, 2)

	g.Complete(2)

	next, err := g.Peek()
	if err != nil || next != 1 {
		t.Errorf("Peek() = %d, %v, want 1, nil", next, err)
	}
}

// TestDrainDiamond replays a diamond of dependencies to quiescence,
// checking the invariants after every step.
func TestDrainDiamond(t *testing.T) {
	g := ready.New[string]()
	for _, task := range []string{"fetch", "build", "test", "package"} {
		g.Add(task)
	}
	g.Link("build", "fetch")
	g.Link("test", "fetch")
	g.Link("package", "build")
	g.Link("package", "test")
	checkInvariants(t, g)

	var order []string
	for !g.Idle() {
		next, err := g.Peek()
		if err != nil {
			t.Fatalf("Peek() error = %v", err)
		}
		g.Complete(next)
		order = append(order, next)
		checkInvariants(t, g)
	}

	if len(order) != 4 {
		t.Fatalf("completed %d tasks, want 4", len(order))
	}
	if order[0] != "fetch" {
		t.Errorf("first completed = %q, want %q", order[0], "fetch")
	}
	if order[3] != "package" {
		t.Errorf("last completed = %q, want %q", order[3], "package")
	}
	if g.Deadlocked() {
		t.Error("Deadlocked() = true after draining")
	}
	_, _, _, planned := g.Counts()
	if planned != 4 {
		t.Errorf("planned count after drain = %d, want 4", planned)
	}
}
