package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/taskboard/internal/server"
	"github.com/matzehuels/taskboard/pkg/feed"
	"github.com/matzehuels/taskboard/pkg/sim"
)

// serveCommand creates the serve command for exposing a board over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve [planfile]",
		Short: "Serve a board over HTTP with a live event stream",
		Long: `Serve a board over HTTP with a live event stream.

The plan is loaded onto a board and exposed through a JSON API:
board state, task details, mutations (complete, sever, suspend,
resume, activate), link management, and Graphviz exports. Transition
events stream over a websocket at /ws.

With --redis, every transition event is additionally published to a
Redis channel so other processes can follow the board.

The command runs until interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := ""
			if len(args) == 1 {
				source = args[0]
			}
			return c.runServe(cmd.Context(), source, addr, redisAddr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8422", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "mirror events to the Redis instance at this address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable remote planfile caching")

	return cmd
}

// runServe loads the plan (if any), wires the bus, and serves until ctx ends.
func (c *CLI) runServe(ctx context.Context, source, addr, redisAddr string, noCache bool) error {
	bus := feed.NewBus(nil)
	defer bus.Close()

	session := sim.NewSession(bus)
	if source != "" {
		p, err := c.loadPlan(ctx, source, noCache)
		if err != nil {
			return fmt.Errorf("load plan %s: %w", source, err)
		}
		if err := session.Apply(p); err != nil {
			return err
		}
		c.Logger.Info("plan loaded", "plan", describePlan(p))
	}

	if redisAddr != "" {
		mirror := feed.NewRedisMirror(redisAddr, feed.DefaultRedisChannel)
		if err := mirror.Ping(ctx); err != nil {
			return fmt.Errorf("connect redis %s: %w", redisAddr, err)
		}
		defer mirror.Close()
		go func() {
			if err := mirror.Run(ctx, bus); err != nil && ctx.Err() == nil {
				c.Logger.Error("redis mirror stopped", "error", err)
			}
		}()
		c.Logger.Info("mirroring events to redis", "addr", redisAddr, "channel", feed.DefaultRedisChannel)
	}

	srv := server.New(session, bus, c.Logger)
	printInfo("serving on http://%s", addr)
	return srv.ListenAndServe(ctx, addr)
}
