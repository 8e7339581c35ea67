package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/taskboard/pkg/errors"
	"github.com/matzehuels/taskboard/pkg/sim"
)

// runCommand creates the run command for replaying a plan to quiescence.
func (c *CLI) runCommand() *cobra.Command {
	var (
		noCache  bool
		snapshot string
	)

	cmd := &cobra.Command{
		Use:   "run [planfile]",
		Short: "Replay a plan to quiescence and report the execution waves",
		Long: `Replay a plan to quiescence and report the execution waves.

Each wave completes every task that is ready at the start of the round,
so one wave corresponds to one round of parallel execution. The run
stops when nothing is ready anymore: either every task completed, the
remaining tasks form a dependency cycle (deadlock), or the only movable
tasks are suspended.

The planfile may be a local path or an http(s) URL; remote planfiles
are cached locally.

Exits with status 1 when the run ends deadlocked.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReplay(cmd.Context(), args[0], noCache, snapshot)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable remote planfile caching")
	cmd.Flags().StringVar(&snapshot, "snapshot", "", "write the final board state to a JSON file")

	return cmd
}

// runReplay loads the plan, replays it, and prints the report.
func (c *CLI) runReplay(ctx context.Context, source string, noCache bool, snapshot string) error {
	p, err := c.loadPlan(ctx, source, noCache)
	if err != nil {
		return fmt.Errorf("load plan %s: %w", source, err)
	}
	c.Logger.Debug("plan loaded", "plan", describePlan(p))

	session := sim.NewSession(nil)
	if err := session.Apply(p); err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	report := sim.Replay(session)
	prog.done(fmt.Sprintf("Completed %d of %d tasks in %d waves",
		report.Completed, len(p.Tasks), len(report.Waves)))

	printReport(p.Title, report)

	if snapshot != "" {
		if err := session.Save(snapshot); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
		printFile(snapshot)
	}

	if report.Deadlocked() {
		return errors.New(errors.ErrCodeInvalidState, "plan deadlocked with %d tasks remaining", report.Remaining)
	}
	return nil
}

// printReport renders the wave table and leftovers.
func printReport(title string, report *sim.Report) {
	if title != "" {
		fmt.Println(StyleTitle.Render(title))
	}
	for i, wave := range report.Waves {
		printKeyValue(fmt.Sprintf("wave %d", i+1), strings.Join(wave, ", "))
	}
	if len(report.Waves) == 0 {
		printInfo("nothing was ready to run")
	}

	if len(report.Suspended) > 0 {
		printWarning("%d suspended task(s) left behind: %s",
			len(report.Suspended), strings.Join(report.Suspended, ", "))
	}

	switch {
	case report.Deadlocked() && len(report.Deadlock) > 0:
		printError("deadlock: %s", StyleDanger.Render(strings.Join(report.Deadlock, " "+iconArrow+" ")))
	case report.Deadlocked():
		printError("deadlock: %d blocked task(s) depend on tasks that never activate", report.Remaining)
	case report.Remaining == 0 && report.Completed > 0:
		printSuccess("all %d tasks completed", report.Completed)
	}
}
