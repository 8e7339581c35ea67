package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/matzehuels/taskboard/pkg/plan"
)

// isRemote reports whether source is a planfile URL rather than a path.
func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// loadPlan resolves a planfile from a local path or an http(s) URL.
// Remote plans are cached (already validated, as JSON) under
// ~/.cache/taskboard/ so repeated commands against the same URL skip the
// download; --no-cache bypasses that.
func (c *CLI) loadPlan(ctx context.Context, source string, noCache bool) (*plan.Plan, error) {
	if !isRemote(source) {
		return plan.Load(source)
	}

	store := newPlanCache(noCache)
	defer store.Close()
	key := "plan:" + source

	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		var p plan.Plan
		if err := json.Unmarshal(data, &p); err == nil {
			c.Logger.Debug("using cached plan", "url", source)
			return &p, nil
		}
		// Corrupt entry; refetch
		_ = store.Delete(ctx, key)
	}

	c.Logger.Debug("fetching plan", "url", source)
	p, err := plan.Fetch(ctx, nil, source)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(p); err == nil {
		if err := store.Set(ctx, key, data, planCacheTTL); err != nil {
			c.Logger.Debug("cache write failed", "err", err)
		}
	}
	return p, nil
}

// describePlan returns a one-line summary for log output.
func describePlan(p *plan.Plan) string {
	title := p.Title
	if title == "" {
		title = "untitled"
	}
	return fmt.Sprintf("%s: %d tasks, %d edges", title, len(p.Tasks), p.EdgeCount())
}
