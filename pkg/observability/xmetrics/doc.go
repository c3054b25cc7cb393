// Package xmetrics 提供统一的可观测性接口（metrics + tracing）。
//
// xmetrics 仅定义最小化接口：Observer/Span/Attr，业务代码只依赖接口。
// 默认实现基于 OpenTelemetry。
//
// # 使用示例
//
//	obs, _ := xmetrics.NewOTelObserver()
//	ctx, span := xmetrics.Start(ctx, obs, xmetrics.SpanOptions{
//		Component: "xcache",
//		Operation: "get",
//	})
//	defer span.End(xmetrics.Result{Err: err})
//
// # 指标命名
//
//   - cache.operation.total
//   - cache.operation.duration
//
// 统一属性：component / operation / status。span 名称为 "component.operation"。
package xmetrics
