// Package sim drives a readiness graph the way a scheduler would.
//
// The core graph in [github.com/matzehuels/taskboard/pkg/ready] carries no
// internal synchronization by contract; [Session] is the concurrency-safe
// wrapper around it. Every session method takes the session lock, applies
// one graph operation, and publishes a transition event to the session's
// feed bus when something actually changed. The CLI, the HTTP server, and
// the TUI board all share one session per board.
//
// [Replay] runs a session to quiescence in waves, completing every ready
// task per round, and reports the wave order plus whatever was left over
// (a deadlock cycle, suspended tasks). Task ordering inside a wave is
// sorted here for stable reports; the graph itself promises no order.
//
// Sessions can be persisted as JSON documents ([Session.Save]) and
// restored later ([Load]), reproducing partitions and edges exactly.
package sim
