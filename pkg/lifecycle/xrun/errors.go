package xrun

import "errors"

var (
	// ErrNilFunc 表示传入的任务函数为 nil。
	ErrNilFunc = errors.New("xrun: nil function")

	// ErrInvalidInterval 表示 Ticker 的间隔参数无效（必须为正数）。
	ErrInvalidInterval = errors.New("xrun: interval must be positive")
)
