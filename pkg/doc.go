// Package pkg provides the core libraries for Taskboard dependency-readiness tracking.
//
// # Overview
//
// Taskboard keeps a directed graph of tasks and tells you, after every
// change, which tasks are ready to run. Each live task is either pending
// (no unfinished dependencies), blocked (waiting on at least one), or
// waiting (suspended by hand); staged tasks sit outside the live graph
// until activated. All transitions are incremental, so the ready set is
// always available without rescanning the graph.
//
// # Architecture
//
// The typical data flow through Taskboard:
//
//	Planfile (TOML/YAML/JSON) or API calls
//	         ↓
//	    [plan] package (decode + validate)
//	         ↓
//	    [sim] package (session, replay, snapshots)
//	         ↓
//	    [ready] package (graph structure + partition tracking)
//	         ↓
//	    [render] / [feed] (DOT/SVG/PNG output, transition events)
//
// # Quick Start
//
// Track a small graph by hand:
//
//	import "github.com/matzehuels/taskboard/pkg/ready"
//
//	g := ready.New[string]()
//	g.Add("build")
//	g.Add("test")
//	g.Link("test", "build") // test depends on build
//
//	next, _ := g.Peek()     // "build"
//	g.Complete(next)        // test is now pending
//
// Or load a planfile and replay it:
//
//	import (
//	    "github.com/matzehuels/taskboard/pkg/plan"
//	    "github.com/matzehuels/taskboard/pkg/sim"
//	)
//
//	p, _ := plan.Load("plan.toml")
//	s := sim.NewSession(nil)
//	_ = s.Apply(p)
//	report := sim.Replay(s)
//
// # Main Packages
//
// [ready] - The readiness tracker itself. A generic directed task graph
// with a four-way partition (pending, blocked, waiting, planned), O(degree)
// transitions, and an on-demand cycle extractor for deadlock diagnosis.
//
// [plan] - Planfile decoding and validation. One schema, three codecs
// (TOML, YAML, JSON), local file loading and retried HTTP fetching.
//
// [sim] - Board sessions. Wraps a [ready] graph with locking, transition
// events, plan application, wave-by-wave replay, and JSON snapshots.
//
// [feed] - Transition event stream. An in-process pub/sub bus (watermill)
// that the HTTP server's websocket feeds from, with an optional Redis
// mirror for other processes.
//
// [render] - Board visualization: deterministic DOT text plus SVG and PNG
// rasterization via Graphviz.
//
// [cache] - Filesystem cache with TTL expiry, used by the CLI for remote
// planfiles.
//
// [errors] - Structured errors with machine-readable codes, plus input
// validation helpers.
//
// [httputil] - HTTP retry with exponential backoff.
//
// [buildinfo] - Build-time version information set via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/ready/...              # Specific package
//	go test -tags integration ./pkg/...  # Include integration tests
//
// [ready]: https://pkg.go.dev/github.com/matzehuels/taskboard/pkg/ready
// [plan]: https://pkg.go.dev/github.com/matzehuels/taskboard/pkg/plan
// [sim]: https://pkg.go.dev/github.com/matzehuels/taskboard/pkg/sim
// [feed]: https://pkg.go.dev/github.com/matzehuels/taskboard/pkg/feed
// [render]: https://pkg.go.dev/github.com/matzehuels/taskboard/pkg/render
// [cache]: https://pkg.go.dev/github.com/matzehuels/taskboard/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/taskboard/pkg/errors
// [httputil]: https://pkg.go.dev/github.com/matzehuels/taskboard/pkg/httputil
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/taskboard/pkg/buildinfo
package pkg
