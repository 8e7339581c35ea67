package render

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/matzehuels/taskboard/pkg/ready"
)

// Options configures DOT generation.
type Options struct {
	// Title is rendered as the graph label, below the diagram.
	Title string

	// LeftToRight lays ranks out horizontally instead of top-down.
	LeftToRight bool
}

// partition node styling, keyed by state.
var nodeAttrs = map[ready.State]string{
	ready.StatePending: `style="rounded,filled", fillcolor="#b7e1a1"`,
	ready.StateBlocked: `style="rounded,filled", fillcolor="#f2a9a9"`,
	ready.StateWaiting: `style="rounded,filled", fillcolor="#f6d776"`,
	ready.StatePlanned: `style="rounded,filled,dashed", fillcolor="#d9d9d9", fontcolor="#555555"`,
}

// ToDOT converts a board snapshot to Graphviz DOT. Tasks are colored by
// partition and every dependency edge is drawn from the dependent to the
// task it depends on. Output is deterministic for a given snapshot.
func ToDOT(snap ready.Snapshot[string], opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph board {\n")
	if opts.LeftToRight {
		buf.WriteString("  rankdir=LR;\n")
	} else {
		buf.WriteString("  rankdir=TB;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, fontsize=14, margin=\"0.2,0.1\"];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=b;\n", opts.Title)
	}
	buf.WriteString("\n")

	for _, part := range []struct {
		state ready.State
		tasks []string
	}{
		{ready.StatePending, snap.Pending},
		{ready.StateBlocked, snap.Blocked},
		{ready.StateWaiting, snap.Waiting},
		{ready.StatePlanned, snap.Planned},
	} {
		tasks := append([]string(nil), part.tasks...)
		sort.Strings(tasks)
		for _, task := range tasks {
			fmt.Fprintf(&buf, "  %q [%s];\n", task, nodeAttrs[part.state])
		}
	}

	buf.WriteString("\n")
	edges := append([]ready.Edge[string](nil), snap.Edges...)
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Dependent != edges[j].Dependent {
			return edges[i].Dependent < edges[j].Dependent
		}
		return edges[i].Dependency < edges[j].Dependency
	})
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.Dependent, e.Dependency)
	}

	buf.WriteString("}\n")
	return buf.String()
}
