// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xjson: JSON 序列化工具，Canonical 规范化序列化与泛型 Decode
//   - xmemo: 基于 xcache 的函数结果缓存，singleflight 合并并发未命中
package util
