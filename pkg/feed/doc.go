// Package feed publishes task transition events over an in-process bus.
//
// Every mutation a [github.com/matzehuels/taskboard/pkg/sim.Session]
// applies to its graph produces one [Event] describing what changed and
// the partition counts afterwards. The bus is a thin wrapper over
// watermill's gochannel pub/sub: publishers never block on slow
// consumers, and every subscriber sees every event published after it
// subscribed.
//
// Consumers inside the process subscribe with [Bus.Subscribe] (the TUI
// board and the websocket handler do); [RedisMirror] forwards the stream
// to a Redis pub/sub channel for external dashboards.
package feed
