package sim

import (
	"github.com/matzehuels/taskboard/pkg/ready"
)

// Report summarizes one replay run.
type Report struct {
	// Waves holds the completed tasks per round, each wave sorted. Tasks
	// in the same wave were ready at the same time.
	Waves [][]string `json:"waves"`

	// Completed is the total number of tasks completed across all waves.
	Completed int `json:"completed"`

	// Remaining counts live tasks left when the run stopped (blocked or
	// suspended).
	Remaining int `json:"remaining"`

	// Deadlock is one dependency loop left behind, when the run ended
	// deadlocked and a loop was reachable. First and last element are the
	// same task.
	Deadlock []string `json:"deadlock,omitempty"`

	// Suspended lists tasks still suspended at the end, sorted.
	Suspended []string `json:"suspended,omitempty"`
}

// Deadlocked reports whether the run ended with every live task blocked.
func (r *Report) Deadlocked() bool {
	return r.Remaining > 0 && len(r.Suspended) == 0
}

// Replay runs a session to quiescence: each round completes every task
// that was ready at the start of the round, so one round corresponds to
// one parallel execution wave. The run stops when nothing is ready -
// either the board drained, every live task is blocked (deadlock), or the
// only movable tasks are suspended.
func Replay(s *Session) *Report {
	report := &Report{}

	for {
		wave := s.Tasks(ready.StatePending)
		if len(wave) == 0 {
			break
		}
		for _, t := range wave {
			s.Complete(t)
		}
		report.Waves = append(report.Waves, wave)
		report.Completed += len(wave)
	}

	_, blocked, waiting, _ := s.Counts()
	report.Remaining = blocked + waiting
	report.Suspended = s.Tasks(ready.StateWaiting)
	if s.Deadlocked() {
		report.Deadlock = s.Cycle()
	}
	return report
}
