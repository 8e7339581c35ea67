package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/taskboard/pkg/errors"
	"github.com/matzehuels/taskboard/pkg/render"
	"github.com/matzehuels/taskboard/pkg/sim"
)

// renderCommand creates the render command for drawing the board as a graph.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		format  string
		output  string
		steps   int
		sideway bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "render [planfile]",
		Short: "Render the dependency board as a Graphviz diagram",
		Long: `Render the dependency board as a Graphviz diagram.

The plan is loaded onto a fresh board and drawn with one node per task,
colored by partition: green for ready, red for blocked, yellow for
suspended, and grey dashed for staged tasks. Edges point from dependent
to dependency.

With --steps N, the N lowest-ordered ready tasks are completed before
rendering, so intermediate board states can be drawn.

DOT output goes to stdout unless --output is given; svg and png
require --output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], format, output, steps, sideway, noCache)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, svg, png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to stdout for dot)")
	cmd.Flags().IntVar(&steps, "steps", 0, "complete N ready tasks before rendering")
	cmd.Flags().BoolVar(&sideway, "horizontal", false, "lay the graph out left-to-right")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable remote planfile caching")

	return cmd
}

// runRender loads the plan, advances it, and writes the diagram.
func (c *CLI) runRender(ctx context.Context, source, format, output string, steps int, sideway, noCache bool) error {
	format = strings.ToLower(format)
	switch format {
	case "dot", "svg", "png":
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want dot, svg, or png)", format)
	}
	if format != "dot" && output == "" {
		return errors.New(errors.ErrCodeInvalidInput, "--output is required for %s", format)
	}

	p, err := c.loadPlan(ctx, source, noCache)
	if err != nil {
		return fmt.Errorf("load plan %s: %w", source, err)
	}

	session := sim.NewSession(nil)
	if err := session.Apply(p); err != nil {
		return err
	}
	for range steps {
		if _, err := session.Step(); err != nil {
			break
		}
	}

	dot := render.ToDOT(session.Snapshot(), render.Options{
		Title:       p.Title,
		LeftToRight: sideway,
	})

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg", "png":
		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", format))
		spinner.Start()
		if format == "svg" {
			data, err = render.SVG(ctx, dot)
		} else {
			data, err = render.PNG(ctx, dot)
		}
		if err != nil {
			spinner.StopWithError("Rendering failed")
			return fmt.Errorf("render %s: %w", format, err)
		}
		spinner.Stop()
	}

	if output == "" {
		fmt.Print(string(data))
		return nil
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printSuccess("Rendered %d tasks", len(p.Tasks))
	printFile(output)
	return nil
}
