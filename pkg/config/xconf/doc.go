// Package xconf 提供配置加载和解析功能，基于 koanf 实现。
//
// xconf 定位为最小化配置加载器，负责文件/字节数据的加载、反序列化和重载。
// 不负责必选字段校验和默认值注入，这些由使用方（如 xcache.LoadConfig）完成。
//
// # 支持的格式
//
//   - YAML：.yaml, .yml
//   - JSON：.json
//
// # 并发安全
//
// Reload 通过互斥锁串行化，解析成功后用 atomic.Pointer 原子替换 koanf 实例。
// Client 返回的指针在 Reload 后仍然有效，但指向旧配置（快照语义）。
//
// # Unmarshal
//
// 使用 koanf 默认的 mapstructure 解码配置：允许弱类型转换，
// 支持 time.Duration 字符串与 encoding.TextUnmarshaler。
// 注意 JSON 数字会被当作纳秒解码为 time.Duration，时长字段请使用字符串（"500ms"）。
package xconf
