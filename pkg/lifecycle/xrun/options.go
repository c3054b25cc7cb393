package xrun

import "github.com/omeyang/xcache/pkg/observability/xlog"

// Option 配置 Group 的选项函数。
type Option func(*groupOptions)

type groupOptions struct {
	logger xlog.Logger
	name   string
}

func defaultOptions() *groupOptions {
	return &groupOptions{
		logger: xlog.Default(),
		name:   "xrun",
	}
}

// WithLogger 设置记录任务生命周期事件的 Logger，默认 xlog.Default()。
func WithLogger(logger xlog.Logger) Option {
	return func(o *groupOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName 设置 Group 名称，用于日志标识，默认 "xrun"。
func WithName(name string) Option {
	return func(o *groupOptions) {
		if name != "" {
			o.name = name
		}
	}
}
