package xmemo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/omeyang/xcache/pkg/observability/xlog"
	"github.com/omeyang/xcache/pkg/storage/xcache"
	"github.com/omeyang/xcache/pkg/util/xjson"
)

// Func 是可被缓存结果的函数。
type Func[R any] func(ctx context.Context, args ...any) (R, error)

// Store 是 Memoize 使用的结果缓存，*xcache.Cache[string, R] 满足此接口。
type Store[V any] interface {
	Get(ctx context.Context, key string, opts ...xcache.ReadOption) (V, bool, error)
	Add(ctx context.Context, key string, value V, opts ...xcache.AddOption) error
}

// Memoize 返回缓存 fn 结果的包装函数。
//
// fn 为 nil 时，返回的函数每次调用都返回 ErrNotAFunction。
// 结果写入缓存时使用缓存的默认存储模式；写入失败（如结果为 nil 时的
// xcache.ErrEmptyValue）原样返回给调用方。
func Memoize[R any](fn Func[R], opts ...Option[R]) Func[R] {
	if fn == nil {
		return func(context.Context, ...any) (R, error) {
			var zero R
			return zero, ErrNotAFunction
		}
	}

	o := &options[R]{logger: xlog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.store == nil {
		store, err := xcache.New[string, R](xcache.WithName("xmemo"), xcache.WithLogger(o.logger))
		if err != nil {
			return func(context.Context, ...any) (R, error) {
				var zero R
				return zero, err
			}
		}
		o.store = store
	}

	m := &memo[R]{
		fn:          fn,
		store:       o.store,
		logger:      o.logger.With(xlog.Component("xmemo")),
		loadTimeout: o.loadTimeout,
	}
	return m.call
}

type memo[R any] struct {
	fn          Func[R]
	store       Store[R]
	logger      xlog.Logger
	loadTimeout time.Duration
	group       singleflight.Group
}

// call 在未命中时通过 singleflight 合并同一 key 的并发加载。
// 加载使用脱离调用方取消链的 context，每个调用方各自等待自己的 ctx：
// 某个调用方取消只影响它自己，加载结果仍写入缓存并返回给其他等待者。
func (m *memo[R]) call(ctx context.Context, args ...any) (R, error) {
	var zero R
	if len(args) == 0 {
		return zero, ErrMissingArguments
	}
	if ctx == nil {
		ctx = context.Background()
	}

	key, err := xjson.Canonical(args)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrKeyDerivation, err)
	}

	// 未命中总是调用原函数，不受缓存 ThrowOnEmpty 配置影响
	cached, ok, err := m.store.Get(ctx, key, xcache.WithReadThrowOnEmpty(false))
	if err != nil && !errors.Is(err, xcache.ErrNotFound) {
		return zero, err
	}
	if err == nil && ok {
		return cached, nil
	}

	ch := m.group.DoChan(key, func() (any, error) {
		loadCtx, cancel := m.loadContext(ctx)
		defer cancel()

		m.logger.Debug(loadCtx, "memo miss", slog.String("key", key))
		result, err := m.fn(loadCtx, args...)
		if err != nil {
			return nil, err
		}
		if err := m.store.Add(loadCtx, key, result); err != nil {
			return nil, err
		}
		return result, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		if res.Shared {
			m.logger.Debug(ctx, "memo call shared", slog.String("key", key))
		}
		result, _ := res.Val.(R)
		return result, nil
	}
}

// loadContext 返回保留 ctx 的 Value 但不继承其取消信号的 context，
// loadTimeout > 0 时附加独立超时。
func (m *memo[R]) loadContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if m.loadTimeout > 0 {
		return context.WithTimeout(detached, m.loadTimeout)
	}
	return context.WithCancel(detached)
}
