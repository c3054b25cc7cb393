// Package xcache 提供进程内键值缓存，支持条目过期、容量上限和结构化值的存储模式。
//
// # 核心语义
//
//   - 条目按写入顺序保存；设置 Limit 后，写入新 key 且已满时先淘汰最早写入的一个条目（FIFO）
//   - 读取不改变顺序；替换已存在的 key 会把它移到最新位置
//   - 设置 Lifetime.Duration 后，过期条目对 Get/Pop/Has 立即不可见，与后台清理节奏无关
//   - 后台清理按 Lifetime.Frequency（默认 500ms）周期执行，Close 时停止
//
// # 写入校验
//
// Add 在修改缓存前完成全部校验，失败时缓存保持不变：
//
//	ErrEmptyKey -> ErrEmptyValue -> 单次选项 -> ErrDuplicateKey
//
// # 存储模式
//
// 仅对结构化值（struct、map、slice、array、指针）生效，字符串和数字总是原样保存：
//
//   - ByReference：保存原值，调用方之后的修改通过缓存可见
//   - Clone：保存深拷贝（mitchellh/copystructure，未导出字段不复制）
//   - Stringify：保存规范化 JSON 文本；V 为 string 或 any 时读出文本，否则解码为 V
//
// 优先级：WithAddObjectAs > Options.AddObjectsAs > ByReference。
//
// # 指针 key
//
// 指针类型的 key 按地址比较。内容相同的两个不同指针是两个条目，
// 用内容相同但地址不同的指针查找得到"不存在"，不会返回错误。
// 需要按内容查找时请使用值类型或字符串作为 key。
//
// # 并发
//
// 所有方法并发安全，临界区同步执行。Pop 的读取和删除在同一临界区完成。
//
// # 错误处理
//
// 所有错误均为包级哨兵错误的包装，使用 errors.Is 判断：
//
//	if errors.Is(err, xcache.ErrNotFound) { ... }
package xcache
