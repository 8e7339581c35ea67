// Package ready tracks which tasks in a dependency graph are ready to run,
// updating incrementally as tasks and edges come and go.
//
// # Overview
//
// A scheduler that owns many interdependent tasks needs one question
// answered cheaply and constantly: which task can run right now? This
// package maintains that answer as a set of four disjoint partitions that
// every tracked task falls into:
//
//   - [StatePending]: live, no unresolved dependencies, ready to run
//   - [StateBlocked]: live, at least one unresolved dependency
//   - [StateWaiting]: suspended by the caller, ignored by readiness
//   - [StatePlanned]: staged ahead of activation, or retired after completion
//
// Every operation adjusts only the partitions of the tasks it touches and
// their immediate neighbors. There is no global recomputation and no full
// topological sort, so tracking stays cheap even when the graph mutates on
// every scheduling step.
//
// # Basic Usage
//
// Create a graph with [New], insert live tasks with [Graph.Add], wire
// dependencies with [Graph.Link], and drain ready work via [Graph.Peek]
// and [Graph.Complete]:
//
//	g := ready.New[string]()
//	g.Add("build")
//	g.Add("test")
//	g.Link("test", "build") // test depends on build
//
//	next, _ := g.Peek() // "build" - test is blocked
//	g.Complete(next)    // test becomes ready
//
// Tasks are opaque comparable values; the graph never inspects them beyond
// map keying. Mutating operations on unknown tasks are silent no-ops, so a
// caller can complete or unlink a task that was already cleaned up without
// checking first.
//
// # Staging
//
// [Graph.Plan] registers a task without making it live, letting callers
// describe future work and its edges ahead of time. Staged tasks collect
// edges but never block on them or unblock others until [Graph.Activate]
// classifies them into the live set. Completing a task also parks it in
// the planned partition, from where [Graph.Activate] can revive it.
//
// # Suspension
//
// [Graph.Suspend] removes a live task from readiness without touching its
// edges; [Graph.Resume] re-classifies it. A suspended task still counts
// for [Graph.HasSuspended], which distinguishes "paused" from "stuck" when
// nothing is ready.
//
// # Deadlock
//
// [Graph.Deadlocked] reports the stuck condition: nothing pending, nothing
// waiting, blocked tasks left over. [Graph.Cycle] then walks the blocked
// region to extract one concrete dependency loop for diagnostics. The walk
// is a single probe, not an enumeration of all cycles.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Callers must serialize
// access when multiple goroutines drive the same graph; the sim package
// provides a mutex-guarded session doing exactly that.
package ready
