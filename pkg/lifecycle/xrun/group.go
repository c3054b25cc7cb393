package xrun

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/omeyang/xcache/pkg/observability/xlog"
)

// Group 基于 errgroup + context 管理后台任务的并发运行和协调关闭。
//
// 当任一任务返回错误或 Cancel 被调用时，所有任务都会收到取消信号。
// Go、GoWithName、Cancel 可安全地并发调用；Wait 应仅调用一次。
//
//	g, ctx := xrun.NewGroup(ctx, xrun.WithName("xcache"))
//	g.GoWithName("prune", xrun.Ticker(time.Second, false, prune))
//	...
//	g.Cancel(nil)
//	err := g.Wait()
type Group struct {
	eg       *errgroup.Group
	ctx      context.Context
	causeCtx context.Context
	cancel   context.CancelCauseFunc
	opts     *groupOptions
}

// NewGroup 创建新的 Group，返回 Group 和派生的 context。
// nil context 归一化为 context.Background()。
func NewGroup(ctx context.Context, opts ...Option) (*Group, context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}

	options := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	causeCtx, cancel := context.WithCancelCause(ctx)
	eg, egCtx := errgroup.WithContext(causeCtx)

	return &Group{
		eg:       eg,
		ctx:      egCtx,
		causeCtx: causeCtx,
		cancel:   cancel,
		opts:     options,
	}, egCtx
}

// Go 启动一个 goroutine 执行 fn。fn 应监听 ctx.Done() 以响应取消。
func (g *Group) Go(fn func(ctx context.Context) error) {
	g.eg.Go(func() error {
		if fn == nil {
			return ErrNilFunc
		}
		return fn(g.ctx)
	})
}

// GoWithName 与 Go 相同，但会在日志中记录任务名称。
func (g *Group) GoWithName(name string, fn func(ctx context.Context) error) {
	g.eg.Go(func() error {
		if fn == nil {
			return ErrNilFunc
		}
		attrs := []slog.Attr{slog.String("group", g.opts.name), slog.String("task", name)}
		g.opts.logger.Debug(g.ctx, "task starting", attrs...)

		err := fn(g.ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			g.opts.logger.Warn(g.ctx, "task exited with error", append(attrs, xlog.Err(err))...)
		} else {
			g.opts.logger.Debug(g.ctx, "task stopped", attrs...)
		}
		return err
	})
}

// Wait 等待所有 goroutine 完成，返回第一个非 nil 错误。
//
// Group 被主动取消时 context.Canceled 会被过滤：有显式 cause 时返回 cause，
// 否则返回 nil。任务内部产生的 context.Canceled 不过滤。
func (g *Group) Wait() error {
	defer g.cancel(nil)

	err := g.eg.Wait()

	if errors.Is(err, context.Canceled) {
		if g.causeCtx.Err() != nil {
			return g.explicitCause()
		}
		return err
	}
	if err == nil && g.causeCtx.Err() != nil {
		return g.explicitCause()
	}
	return err
}

func (g *Group) explicitCause() error {
	if cause := context.Cause(g.causeCtx); cause != nil && !errors.Is(cause, context.Canceled) {
		return cause
	}
	return nil
}

// Cancel 主动取消所有 goroutine。cause 会由 Wait 返回；nil 表示正常关闭。
func (g *Group) Cancel(cause error) {
	g.cancel(cause)
}

// Context 返回 Group 的 context。
func (g *Group) Context() context.Context {
	return g.ctx
}
