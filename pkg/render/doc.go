// Package render turns board snapshots into Graphviz diagrams.
//
// [ToDOT] lays the board out as a directed graph with one node per task,
// colored by partition (pending green, blocked red, waiting amber,
// planned grey and dashed), and one arrow per dependency edge pointing
// from the dependent to its dependency. The DOT output is deterministic:
// nodes and edges are sorted, so identical snapshots render identically.
//
// [SVG] and [PNG] rasterize a DOT string through goccy/go-graphviz; no
// external graphviz installation is needed.
package render
