package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/taskboard/pkg/ready"
	"github.com/matzehuels/taskboard/pkg/sim"
)

// inspectCommand creates the inspect command for examining a plan without running it.
func (c *CLI) inspectCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "inspect [planfile]",
		Short: "Show the initial board state of a plan",
		Long: `Show the initial board state of a plan.

The plan is loaded onto a fresh board and the resulting partition is
printed: which tasks are ready immediately, which are blocked on
dependencies, which are suspended, and which are staged on hold.
Nothing is executed.

A deadlock probe runs as well: if no task is ready and none are
suspended, one dependency cycle is extracted and printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable remote planfile caching")

	return cmd
}

// runInspect loads the plan and prints the board partition.
func (c *CLI) runInspect(ctx context.Context, source string, noCache bool) error {
	p, err := c.loadPlan(ctx, source, noCache)
	if err != nil {
		return fmt.Errorf("load plan %s: %w", source, err)
	}

	session := sim.NewSession(nil)
	if err := session.Apply(p); err != nil {
		return err
	}

	if p.Title != "" {
		fmt.Println(StyleTitle.Render(p.Title))
	}

	pending, blocked, waiting, planned := session.Counts()
	printKeyValue("tasks", fmt.Sprintf("%d", len(p.Tasks)))
	printKeyValue("edges", fmt.Sprintf("%d", p.EdgeCount()))
	printKeyValue("pending", fmt.Sprintf("%d", pending))
	printKeyValue("blocked", fmt.Sprintf("%d", blocked))
	printKeyValue("waiting", fmt.Sprintf("%d", waiting))
	printKeyValue("planned", fmt.Sprintf("%d", planned))

	printPartition("ready now", StyleSuccess, session.Tasks(ready.StatePending))
	printPartition("blocked on", StyleDanger, session.Tasks(ready.StateBlocked))
	printPartition("suspended", StyleWarning, session.Tasks(ready.StateWaiting))
	printPartition("on hold", StyleDim, session.Tasks(ready.StatePlanned))

	switch {
	case session.Idle():
		printInfo("board is idle: nothing to run")
	case session.Deadlocked():
		if cycle := session.Cycle(); cycle != nil {
			printError("deadlocked from the start: %s",
				StyleDanger.Render(strings.Join(cycle, " "+iconArrow+" ")))
		} else {
			printError("deadlocked from the start: blocked tasks depend on tasks that never activate")
		}
	}

	return nil
}

// printPartition prints one labeled group of tasks, skipping empty groups.
func printPartition(label string, style lipgloss.Style, tasks []string) {
	if len(tasks) == 0 {
		return
	}
	printKeyValue(label, style.Render(strings.Join(tasks, ", ")))
}
