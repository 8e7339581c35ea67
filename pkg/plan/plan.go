package plan

import (
	"github.com/matzehuels/taskboard/pkg/errors"
)

// Task is one work item declared in a planfile.
type Task struct {
	// ID uniquely identifies the task within the plan.
	ID string `toml:"id" yaml:"id" json:"id"`

	// Needs lists the IDs of tasks that must complete before this one
	// becomes ready. Every entry must name a task declared in the same
	// plan.
	Needs []string `toml:"needs" yaml:"needs" json:"needs,omitempty"`

	// Hold stages the task without activating it. Held tasks collect
	// dependency edges but stay out of readiness until activated.
	Hold bool `toml:"hold" yaml:"hold" json:"hold,omitempty"`

	// Paused inserts the task suspended. Mutually exclusive with Hold.
	Paused bool `toml:"paused" yaml:"paused" json:"paused,omitempty"`
}

// Plan is a declared task set with its dependency edges.
type Plan struct {
	// Title is an optional human-readable name for the plan.
	Title string `toml:"title" yaml:"title" json:"title,omitempty"`

	// Tasks are the declared work items, in declaration order.
	Tasks []Task `toml:"tasks" yaml:"tasks" json:"tasks"`
}

// Validate checks the plan for structural problems: invalid or duplicate
// task IDs, needs referencing undeclared tasks, and tasks that are both
// held and paused. The returned errors carry codes from
// [github.com/matzehuels/taskboard/pkg/errors].
func (p *Plan) Validate() error {
	if len(p.Tasks) == 0 {
		return errors.New(errors.ErrCodeInvalidPlan, "plan declares no tasks")
	}

	declared := make(map[string]struct{}, len(p.Tasks))
	for _, t := range p.Tasks {
		if err := errors.ValidateTaskID(t.ID); err != nil {
			return err
		}
		if _, ok := declared[t.ID]; ok {
			return errors.New(errors.ErrCodeInvalidPlan, "task %q declared twice", t.ID)
		}
		declared[t.ID] = struct{}{}

		if t.Hold && t.Paused {
			return errors.New(errors.ErrCodeInvalidPlan, "task %q cannot be both held and paused", t.ID)
		}
	}

	for _, t := range p.Tasks {
		for _, need := range t.Needs {
			if _, ok := declared[need]; !ok {
				return errors.New(errors.ErrCodeInvalidPlan, "task %q needs undeclared task %q", t.ID, need)
			}
		}
	}

	return nil
}

// TaskIDs returns the declared task IDs in declaration order.
func (p *Plan) TaskIDs() []string {
	ids := make([]string, len(p.Tasks))
	for i, t := range p.Tasks {
		ids[i] = t.ID
	}
	return ids
}

// EdgeCount returns the total number of declared dependency edges.
func (p *Plan) EdgeCount() int {
	n := 0
	for _, t := range p.Tasks {
		n += len(t.Needs)
	}
	return n
}
