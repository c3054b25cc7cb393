// Package xjson 提供 JSON 序列化工具函数。
//
// # 功能概览
//
//   - [Canonical]: 规范化紧凑序列化。对象键（含结构体字段）按字典序排列，
//     结构相同的值得到逐字节相同的结果。xcache 的 stringify 存储模式和
//     xmemo 的缓存键都基于它。失败时返回 [ErrMarshal] 包装的错误。
//   - [Decode]: 泛型解码，将 JSON 文本解码为指定类型，失败时返回 [ErrUnmarshal] 包装的错误。
//
// # 注意事项
//
// Canonical 不做 HTML 转义，数字按原始文本保留精度。
package xjson
