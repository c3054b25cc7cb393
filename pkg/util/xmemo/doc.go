// Package xmemo 为函数提供基于 xcache 的结果缓存（memoization）。
//
// Memoize 包装函数后，以参数的规范化 JSON 作为缓存键：命中时直接返回缓存结果，
// 未命中时调用原函数、写入缓存并返回。同一 key 的并发未命中通过 singleflight 合并，
// 原函数只执行一次。
//
// 加载（原函数与写入缓存）使用保留调用方 ctx 的 Value、但不继承其取消的 context，
// 每个调用方只等待自己的 ctx：先到的调用方取消后返回 ctx.Err()，其余等待者
// 仍拿到结果，结果照常写入缓存。需要限制加载时长时使用 WithLoadTimeout。
// 缓存是否配置 ThrowOnEmpty 不影响判定：未命中总是调用原函数。
//
// 包装器本身不做过期或淘汰，完全依赖缓存的配置。默认缓存为 xcache.New 的默认选项：
// 不限容量、永不过期、ByReference 存储。需要过期时通过 WithStore 注入配置好的缓存：
//
//	store, _ := xcache.New[string, int](xcache.WithLifetime(time.Minute, 0))
//	square := xmemo.Memoize(fn, xmemo.WithStore[int](store))
//
// # 错误
//
//   - 包装 nil 函数：每次调用返回 ErrNotAFunction
//   - 不带参数调用：返回 ErrMissingArguments
//   - 参数无法序列化（如函数、通道）：返回 ErrKeyDerivation
//
// 以上校验都在访问缓存之前完成。缓存返回的错误原样透传，原函数的错误不缓存。
package xmemo
