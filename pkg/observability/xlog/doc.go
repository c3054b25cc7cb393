// Package xlog 基于 log/slog 的结构化日志库。
//
// # 核心功能
//
//   - Builder 模式配置（输出目标、级别、格式、轮转、固定属性）
//   - 从 context 的 OpenTelemetry span 注入 trace_id、span_id（EnrichHandler，默认启用）
//   - 动态级别调整（运行时热更新）
//   - 全局 Logger 便利函数
//
// # 创建 Logger
//
//	logger, cleanup, err := xlog.New().
//		SetLevel(xlog.LevelDebug).
//		SetFormat("json").
//		SetRotation("/var/log/app.log", xlog.WithMaxSize(100)).
//		Build()
//	if err != nil {
//		return err
//	}
//	defer cleanup()
//
// Builder 为 first-error-wins：遇到第一个配置错误后，Build 返回该错误。
//
// # 全局 Logger
//
// [Default] 惰性创建（stderr、Info 级别、text 格式），[SetDefault] 替换，
// [ResetDefault] 仅用于测试。库组件在未注入 Logger 时使用 [Default]。
//
// # 派生 Logger 与级别控制
//
// [Logger.With] 和 [Logger.WithGroup] 返回 [Logger] 接口。底层实现同时实现了
// [LoggerWithLevel]，派生 logger 共享父级的 LevelVar。
package xlog
