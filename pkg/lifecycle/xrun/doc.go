// Package xrun 提供基于 errgroup + context 的后台任务生命周期管理。
//
// # 核心概念
//
// [Group] 包装 errgroup.Group：任一任务返回错误或调用 [Group.Cancel] 时，
// 所有任务的 context 被取消；[Group.Wait] 等待全部退出并过滤正常取消。
//
// [Ticker] / [TickerWithClock] 把周期性函数包装成任务。xcache 的过期清理循环
// 就是一个挂在 Group 上的 Ticker，缓存 Close 时 Cancel + Wait，保证 goroutine 不泄漏。
//
//	g, _ := xrun.NewGroup(context.Background(), xrun.WithName("xcache"))
//	g.GoWithName("prune", xrun.Ticker(500*time.Millisecond, false, func(ctx context.Context) error {
//		cache.Prune(ctx)
//		return nil
//	}))
//	defer func() {
//		g.Cancel(nil)
//		_ = g.Wait()
//	}()
//
// [errgroup]: https://pkg.go.dev/golang.org/x/sync/errgroup
package xrun
