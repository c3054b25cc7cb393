package xlog

import (
	"log/slog"
	"time"
)

// 常用属性 Key 常量
const (
	// KeyError 错误字段
	KeyError = "error"
	// KeyDuration 耗时字段
	KeyDuration = "duration"
	// KeyCount 计数字段
	KeyCount = "count"
	// KeyComponent 组件名称字段
	KeyComponent = "component"
	// KeyOperation 操作名称字段
	KeyOperation = "operation"
	// KeyTraceID trace ID 字段，由 EnrichHandler 注入
	KeyTraceID = "trace_id"
	// KeySpanID span ID 字段，由 EnrichHandler 注入
	KeySpanID = "span_id"
)

// Err 创建错误属性。err 为 nil 时返回空属性（会被 slog 忽略）。
//
//	if err != nil {
//	    logger.Error(ctx, "operation failed", xlog.Err(err))
//	}
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Duration 创建耗时属性（人类可读格式，如 "1m30s"）
func Duration(d time.Duration) slog.Attr {
	return slog.String(KeyDuration, d.String())
}

// Component 创建组件名属性
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Operation 创建操作名属性
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// Count 创建计数属性
func Count(n int64) slog.Attr {
	return slog.Int64(KeyCount, n)
}
