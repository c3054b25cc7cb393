package xmemo

import "errors"

var (
	// ErrNotAFunction 表示被包装的函数为 nil。
	ErrNotAFunction = errors.New("xmemo: not a function")

	// ErrMissingArguments 表示调用时没有传入参数。
	ErrMissingArguments = errors.New("xmemo: missing arguments")

	// ErrKeyDerivation 表示参数无法序列化为缓存键。
	ErrKeyDerivation = errors.New("xmemo: failed to derive cache key")
)
