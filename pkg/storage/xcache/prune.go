package xcache

import (
	"context"
	"time"

	"github.com/omeyang/xcache/pkg/lifecycle/xrun"
	"github.com/omeyang/xcache/pkg/observability/xlog"
	"github.com/omeyang/xcache/pkg/observability/xmetrics"
)

// startPruner 启动后台清理任务，生命周期与缓存实例绑定，由 Close 取消并等待退出。
func (c *Cache[K, V]) startPruner() {
	g, _ := xrun.NewGroup(context.Background(),
		xrun.WithLogger(c.logger),
		xrun.WithName(componentName+"."+c.opts.Name),
	)
	c.group = g

	tick := func(ctx context.Context) error {
		c.mu.Lock()
		n := c.removeExpired(c.clock.Now())
		c.mu.Unlock()
		if n > 0 {
			c.logger.Debug(ctx, "pruned expired entries", xlog.Count(int64(n)))
		}
		return nil
	}
	g.GoWithName("prune", xrun.TickerWithClock(c.clock, c.opts.Lifetime.Frequency, false, tick))
}

// Prune 立即删除所有已过期的条目，返回删除数量。后台清理的每个周期执行相同的逻辑。
func (c *Cache[K, V]) Prune(ctx context.Context) (n int, err error) {
	ctx, span := c.start(ctx, opPrune)
	defer func() {
		span.End(xmetrics.Result{Err: err, Attrs: []xmetrics.Attr{xmetrics.Int("removed", n)}})
	}()

	if err = c.guard(ctx); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed.Load() {
		return 0, ErrClosed
	}
	n = c.removeExpired(c.clock.Now())
	c.logger.Debug(ctx, "prune finished", xlog.Count(int64(n)))
	return n, nil
}

// removeExpired 删除在 now 时刻已过期的条目。调用方须持有 c.mu。
func (c *Cache[K, V]) removeExpired(now time.Time) int {
	removed := 0
	for _, k := range c.store.Keys() {
		e, ok := c.store.Peek(k)
		if ok && e.expired(now, c.opts.Lifetime.Duration) {
			c.store.Remove(k)
			removed++
		}
	}
	c.stats.expirations.Add(uint64(removed))
	return removed
}
