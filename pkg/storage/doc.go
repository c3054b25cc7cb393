// Package storage 提供数据存储相关的子包。
//
// 子包列表：
//   - xcache: 进程内键值缓存，支持条目过期、FIFO 容量上限和结构化值存储模式
//
// 设计原则：
//   - 所有操作接受 context，并发安全
//   - 内置可观测性（xmetrics 观测、xlog 日志）
//   - 后台任务生命周期与实例绑定，Close 时停止
package storage
