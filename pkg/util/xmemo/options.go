package xmemo

import (
	"time"

	"github.com/omeyang/xcache/pkg/observability/xlog"
)

type options[R any] struct {
	store       Store[R]
	logger      xlog.Logger
	loadTimeout time.Duration
}

// Option 定义 Memoize 的配置函数类型。
type Option[R any] func(*options[R])

// WithStore 设置结果缓存，nil 忽略。默认使用 xcache.New 的默认选项创建。
func WithStore[R any](store Store[R]) Option[R] {
	return func(o *options[R]) {
		if store != nil {
			o.store = store
		}
	}
}

// WithLogger 设置日志记录器，nil 忽略。默认 xlog.Default()。
func WithLogger[R any](logger xlog.Logger) Option[R] {
	return func(o *options[R]) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLoadTimeout 设置单次加载（原函数 + 写入缓存）的独立超时，默认 0 表示不超时。
// 加载不继承调用方 ctx 的取消，fn 可能阻塞时应设置此项。
func WithLoadTimeout[R any](timeout time.Duration) Option[R] {
	return func(o *options[R]) {
		if timeout > 0 {
			o.loadTimeout = timeout
		}
	}
}
